package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"group-booking-arbiter/internal/domain/access"
	"group-booking-arbiter/internal/handler/httperr"
	"group-booking-arbiter/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey  = "principal"
	ctxMerchantIDKey = "merchant_id"
)

var (
	errMissingToken    = errors.New("missing bearer token")
	errInvalidMerchant = errors.New("invalid merchant id")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

// RequireMerchant resolves the :merchantId path parameter and rejects principals scoped to
// another merchant. Must run after RequireAuth.
func (m *AuthMiddleware) RequireMerchant() gin.HandlerFunc {
	return func(c *gin.Context) {
		merchantID, err := uuid.Parse(c.Param("merchantId"))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidMerchant, "Invalid merchant id", nil)
			return
		}

		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}
		if err := principal.Authorize(merchantID); err != nil {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxMerchantIDKey, merchantID)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		if !principal.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, access.ErrInvalidRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPrincipal(c *gin.Context) (access.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return access.Principal{}, false
	}

	p, ok := v.(access.Principal)
	return p, ok
}

// GetMerchantID returns the merchant resolved by RequireMerchant.
func GetMerchantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxMerchantIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
