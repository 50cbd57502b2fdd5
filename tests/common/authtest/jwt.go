//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"dealstream/internal/domain/user"
	"dealstream/internal/pkg/config"
	"dealstream/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, username string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, nil)
	token, err := service.GenerateAccessToken(userID, username, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, username string, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, nil)
	token, err := service.GenerateAccessToken(userID, username, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
