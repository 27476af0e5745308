package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio-digital/restaurante-api/auth"
)

func protectedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenUsesInjectedSecret(t *testing.T) {
	// The secret comes from the route wiring, never from the process env.
	t.Setenv("JWT_SECRET", "env-secret-must-be-ignored")

	token, err := auth.IssueToken(7, "admin", time.Hour, "configured-secret")
	require.NoError(t, err)

	r := protectedRouter(ValidateToken("configured-secret"))
	w := get(r, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)

	other := protectedRouter(ValidateToken("different-secret"))
	w = get(other, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsMalformedHeaders(t *testing.T) {
	r := protectedRouter(ValidateToken("secret"))

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"missing header", nil},
		{"no bearer prefix", map[string]string{"Authorization": "token-without-prefix"}},
		{"garbage token", map[string]string{"Authorization": "Bearer not-a-jwt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.headers)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestValidateAPIKeyUsesInjectedKey(t *testing.T) {
	t.Setenv("AGENT_API_KEY", "env-key-must-be-ignored")

	r := protectedRouter(ValidateAPIKey("agent-key"))

	w := get(r, map[string]string{"X-API-KEY": "agent-key"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, map[string]string{"X-API-KEY": "env-key-must-be-ignored"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"matching role passes", "admin", http.StatusOK},
		{"other role is forbidden", "staff", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/protected",
				func(c *gin.Context) { c.Set("role", tt.role) },
				RequireRole("admin"),
				func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
			)
			w := get(r, nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
