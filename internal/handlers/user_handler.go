package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
	"github.com/BruksfildServices01/barber-turnos/internal/media"
	"github.com/BruksfildServices01/barber-turnos/internal/middleware"
	ucUser "github.com/BruksfildServices01/barber-turnos/internal/usecase/user"
)

type UserHandler struct {
	users  user.Repository
	list   *ucUser.ListUsers
	del    *ucUser.DeleteUser
	avatar *ucUser.Avatar
}

func NewUserHandler(
	users user.Repository,
	list *ucUser.ListUsers,
	del *ucUser.DeleteUser,
	avatar *ucUser.Avatar,
) *UserHandler {
	return &UserHandler{users: users, list: list, del: del, avatar: avatar}
}

func (h *UserHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.UserID() == 0 {
		httperr.Unauthorized(c, "invalid_token", "Token inválido o expirado")
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), claims.UserID())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) ListBarbers(c *gin.Context) {
	users, err := h.list.Barbers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) ListClients(c *gin.Context) {
	users, err := h.list.Clients(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) DeleteByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.del.ByID(c.Request.Context(), id, actor(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *UserHandler) DeleteByEmail(c *gin.Context) {
	if err := h.del.ByEmail(c.Request.Context(), c.Param("email"), actor(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// UploadAvatar takes the raw image as the request body or as the "avatar"
// multipart field.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	raw, err := readUpload(c)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidImage, "No se pudo leer la imagen")
		return
	}

	key, err := h.avatar.Upload(c.Request.Context(), middleware.GetClaims(c).UserID(), id, raw)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"key": key})
}

func (h *UserHandler) GetAvatar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	data, contentType, err := h.avatar.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, contentType, data)
}

func readUpload(c *gin.Context) ([]byte, error) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+1)
	c.Request.Body = body

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("avatar")
		if err != nil {
			return nil, err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, media.MaxUploadBytes+1))
	}

	return io.ReadAll(body)
}
