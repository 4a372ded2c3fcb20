package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/middleware"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs the validate tags. On failure
// it writes the 400 response and returns false.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Validation(c, map[string]string{"body": "JSON inválido"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[jsonName(fe.Field())] = fe.Tag()
			}
		}
		httperr.Validation(c, fields)
		return false
	}
	return true
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// paramID parses a positive numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, httperr.CodeValidation, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

// actor is the email of the authenticated user, or "" on public routes.
func actor(c *gin.Context) string {
	if claims := middleware.GetClaims(c); claims != nil {
		return claims.UserEmail
	}
	return ""
}
