//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"dealstream/internal/domain/user"
	"dealstream/internal/pkg/clock"
	"dealstream/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewFake(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "alice@example.com", user.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.True(t, clk.Now().Add(time.Hour).Equal(claims.ExpiresAt.Time))
}

func TestService_Expiry(t *testing.T) {
	clk := clock.NewFake(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)

	token, err := svc.GenerateAccessToken(uuid.New(), "alice@example.com", user.RoleViewer)
	require.NoError(t, err)

	clk.Advance(59 * time.Minute)
	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	clk.Advance(2 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_RejectsForeignTokens(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, nil)

	other := jwt.NewService("other-secret", time.Hour, nil)
	foreign, err := other.GenerateAccessToken(uuid.New(), "alice@example.com", user.RoleViewer)
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	wrongIssuer, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		UserID: uuid.New(),
		Role:   "viewer",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(wrongIssuer)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(none)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
