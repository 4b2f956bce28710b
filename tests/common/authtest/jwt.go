//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "ops@storefront.test", jwt.RoleAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(subject, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
