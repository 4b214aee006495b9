//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"group-booking-arbiter/internal/domain/access"
	"group-booking-arbiter/internal/pkg/config"
	"group-booking-arbiter/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actorID string, merchantID uuid.UUID, role access.Role) string {
	t.Helper()
	duration := h.cfg.TokenDuration
	if duration <= 0 {
		duration = time.Hour
	}
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration)
	token, err := service.GenerateToken(actorID, merchantID, role.String())
	require.NoError(t, err)
	return token
}

// ManagerToken is a manager scoped to the merchant.
func (h *JWTHelper) ManagerToken(t *testing.T, merchantID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, "manager-"+merchantID.String()[:8], merchantID, access.RoleManager)
}

// ServiceToken is an integration scoped to the merchant.
func (h *JWTHelper) ServiceToken(t *testing.T, merchantID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, "channel-manager", merchantID, access.RoleService)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, merchantID uuid.UUID, role access.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, -time.Minute)
	token, err := service.GenerateToken("expired-actor", merchantID, role.String())
	require.NoError(t, err)
	return token
}
