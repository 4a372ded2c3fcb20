package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
	ucUser "github.com/BruksfildServices01/barber-turnos/internal/usecase/user"
)

type AuthHandler struct {
	register *ucUser.RegisterUser
	login    *ucUser.Login
}

func NewAuthHandler(register *ucUser.RegisterUser, login *ucUser.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Telefono    string `json:"telefono"`
	Contrasena  string `json:"contraseña" validate:"required"`
	TipoUsuario string `json:"tipoUsuario" validate:"required,oneof=Cliente Barbero"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Contrasena string `json:"contraseña" validate:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	u, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Name:     req.Nombre,
		Email:    req.Email,
		Phone:    req.Telefono,
		Password: req.Contrasena,
		Role:     req.TipoUsuario,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, u)
}

// Login answers with the bare token as a JSON string.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	token, err := h.login.Execute(c.Request.Context(), req.Email, req.Contrasena)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, token)
}
