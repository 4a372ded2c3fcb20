package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-turnos/internal/auth"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(tokens *auth.Tokens, roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, GetClaims(c).UserName)
	})
	r.GET("/p", handlers...)
	return r
}

func issue(t *testing.T, tokens *auth.Tokens, role string) string {
	t.Helper()
	raw, err := tokens.Issue(&models.User{ID: 1, Name: "Juan Perez", Email: "cliente@test.com", Role: role})
	require.NoError(t, err)
	return raw
}

func TestAuthMiddleware_HeaderForms(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	raw := issue(t, tokens, "Cliente")
	r := protectedRouter(tokens)

	for name, header := range map[string]string{
		"bare":      raw,
		"bearer":    "Bearer " + raw,
		"lowercase": "bearer " + raw,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			req.Header.Set("Authorization", header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "Juan Perez", w.Body.String())
		})
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := protectedRouter(tokens)

	for name, header := range map[string]string{
		"missing": "",
		"garbage": "Bearer not-a-jwt",
		"foreign": issue(t, auth.NewTokens("other", time.Hour), "Cliente"),
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := protectedRouter(tokens, "Barbero")

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", issue(t, tokens, "Cliente"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", issue(t, tokens, "Barbero"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter(2, time.Minute)
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/login", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())

	now = now.Add(61 * time.Second)
	assert.Equal(t, http.StatusOK, hit())
}

func TestRequestIDAndRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "internal_error")

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
