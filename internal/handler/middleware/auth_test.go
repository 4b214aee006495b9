//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"group-booking-arbiter/internal/domain/access"
	"group-booking-arbiter/internal/handler/middleware"
	"group-booking-arbiter/internal/pkg/config"
	"group-booking-arbiter/internal/pkg/jwt"
	"group-booking-arbiter/internal/usecase"
	"group-booking-arbiter/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	service := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenDuration)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(service))

	r := gin.New()
	g := r.Group("/m/:merchantId", auth.RequireAuth(), auth.RequireMerchant())
	g.GET("/whoami", func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		require.True(t, ok)
		id, ok := middleware.GetMerchantID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"actor": p.ActorID, "merchant": id.String()})
	})
	g.POST("/manage", auth.RequireRoleAtLeast(access.RoleManager), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, authtest.NewJWTHelper(cfg.JWT)
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, tokens := newRouter(t)
	merchantID := uuid.New()
	path := "/m/" + merchantID.String() + "/whoami"

	t.Run("missing token", func(t *testing.T) {
		w := do(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Access token required")
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := do(r, http.MethodGet, path, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	})

	t.Run("expired token", func(t *testing.T) {
		w := do(r, http.MethodGet, path, tokens.CreateExpiredToken(t, merchantID, access.RoleManager))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("principal of the merchant passes", func(t *testing.T) {
		w := do(r, http.MethodGet, path, tokens.ServiceToken(t, merchantID))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), merchantID.String())
		assert.Contains(t, w.Body.String(), "channel-manager")
	})

	t.Run("principal of another merchant is forbidden", func(t *testing.T) {
		w := do(r, http.MethodGet, path, tokens.ManagerToken(t, uuid.New()))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Insufficient permissions")
	})

	t.Run("admin passes for any merchant", func(t *testing.T) {
		token := tokens.GenerateToken(t, "ops", uuid.Nil, access.RoleAdmin)
		w := do(r, http.MethodGet, path, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed merchant id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/m/not-a-uuid/whoami", tokens.ManagerToken(t, merchantID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid merchant id")
	})
}

func TestAuthMiddleware_RequireRoleAtLeast(t *testing.T) {
	r, tokens := newRouter(t)
	merchantID := uuid.New()
	path := "/m/" + merchantID.String() + "/manage"

	tests := []struct {
		name       string
		token      string
		expectCode int
	}{
		{name: "service is below manager", token: tokens.ServiceToken(t, merchantID), expectCode: http.StatusForbidden},
		{name: "manager", token: tokens.ManagerToken(t, merchantID), expectCode: http.StatusNoContent},
		{name: "admin", token: tokens.GenerateToken(t, "ops", uuid.Nil, access.RoleAdmin), expectCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, path, tt.token)
			assert.Equal(t, tt.expectCode, w.Code)
		})
	}
}
