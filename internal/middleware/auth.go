package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/auth"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

const ClaimsKey = "claims"

// AuthMiddleware validates the session token. The header may carry
// "Bearer <token>" or the bare token the web client sends.
func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromHeader(c.GetHeader("Authorization"))
		if raw == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Autenticación requerida")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token inválido o expirado")
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func tokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// RequireRole rejects requests whose tipoUsuario is not listed.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !allowed[claims.Role] {
			httperr.Forbidden(c, httperr.CodeForbidden, "Permisos insuficientes")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims returns the verified claims, or nil on public routes.
func GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
