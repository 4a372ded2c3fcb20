package user

import (
	"context"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/storage"
	"github.com/BruksfildServices01/barber-turnos/internal/media"
)

// Avatar stores and serves profile pictures. The object key is derived
// from the user, so the user row never changes.
type Avatar struct {
	users domain.Repository
	store storage.ObjectStore
}

// NewAvatar accepts a nil store; every call then reports
// storage_unavailable.
func NewAvatar(users domain.Repository, store storage.ObjectStore) *Avatar {
	return &Avatar{users: users, store: store}
}

// Upload replaces the avatar of userID. Only the user may change it.
func (uc *Avatar) Upload(ctx context.Context, actorID, userID uint, raw []byte) (string, error) {
	if uc.store == nil {
		return "", storageUnavailable()
	}
	if actorID != userID {
		return "", httperr.ErrBusinessf(httperr.CodeForbidden, "Solo puedes cambiar tu propia foto")
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	img, err := media.ProcessAvatar(raw)
	if err != nil {
		return "", err
	}

	key := media.AvatarKey(u.ID, u.Name)
	if err := uc.store.Put(ctx, key, media.AvatarContentType, img); err != nil {
		return "", err
	}
	return key, nil
}

// Get returns the WebP bytes of userID's avatar.
func (uc *Avatar) Get(ctx context.Context, userID uint) ([]byte, string, error) {
	if uc.store == nil {
		return nil, "", storageUnavailable()
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	return uc.store.Get(ctx, media.AvatarKey(u.ID, u.Name))
}

func storageUnavailable() error {
	return httperr.ErrBusinessf(httperr.CodeStorageUnavailable, "El almacenamiento de imágenes no está configurado")
}
