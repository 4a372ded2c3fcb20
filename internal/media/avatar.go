// Package media turns uploaded barber photos into square WebP avatars.
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/gosimple/slug"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

const (
	AvatarSize        = 256
	AvatarContentType = "image/webp"
	MaxUploadBytes    = 5 << 20

	// MaxSourceDimension bounds the decoded width and height of an upload.
	MaxSourceDimension = 4096

	avatarQuality = 80
)

// AvatarKey is the object key for a user's avatar, e.g.
// "avatars/3-carlos-martinez.webp".
func AvatarKey(userID uint, name string) string {
	return fmt.Sprintf("avatars/%d-%s.webp", userID, slug.Make(name))
}

// ProcessAvatar decodes a JPEG, PNG or WebP image, crops it to a centered
// square, scales it to AvatarSize and encodes it as WebP.
func ProcessAvatar(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidImage, "La imagen está vacía")
	}
	if len(raw) > MaxUploadBytes {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidImage, "La imagen supera los 5 MB")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidImage, "Formato de imagen no soportado")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 ||
		cfg.Width > MaxSourceDimension || cfg.Height > MaxSourceDimension {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidImage,
			"La imagen no puede superar %dx%d píxeles", MaxSourceDimension, MaxSourceDimension,
		)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidImage, "Formato de imagen no soportado")
	}

	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, squareCrop(src.Bounds()), draw.Over, nil)

	var out bytes.Buffer
	if err := webp.Encode(&out, dst, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return out.Bytes(), nil
}

func squareCrop(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w == h {
		return b
	}
	if w > h {
		off := (w - h) / 2
		return image.Rect(b.Min.X+off, b.Min.Y, b.Min.X+off+h, b.Max.Y)
	}
	off := (h - w) / 2
	return image.Rect(b.Min.X, b.Min.Y+off, b.Max.X, b.Min.Y+off+w)
}
