package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratford/music-platform/internal/clock"
	"github.com/stratford/music-platform/internal/core/domain"
)

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("", TokenTTL, nil)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenService_RoundTrip(t *testing.T) {
	clk := clock.NewFixed(testNow)
	svc, err := NewTokenService("secret", TokenTTL, clk)
	require.NoError(t, err)

	token, err := svc.Issue(&domain.User{ID: "u1", Email: "a@example.com", Role: domain.RoleVenue})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, domain.RoleVenue, claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(testNow.Add(24*time.Hour)))
}

func TestTokenService_Expiry(t *testing.T) {
	clk := clock.NewFixed(testNow)
	svc, err := NewTokenService("secret", TokenTTL, clk)
	require.NoError(t, err)

	token, err := svc.Issue(&domain.User{ID: "u1", Role: domain.RoleReader})
	require.NoError(t, err)

	clk.Advance(TokenTTL - time.Minute)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clk.Advance(2 * time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	clk := clock.NewFixed(testNow)
	svc, err := NewTokenService("secret", TokenTTL, clk)
	require.NoError(t, err)

	claims := jwt.MapClaims{"userId": "u1", "role": domain.RoleAdmin, "exp": testNow.Add(time.Hour).Unix()}

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": "u1"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":     "garbage",
		"wrong key":   otherKey,
		"wrong alg":   hs512,
		"alg none":    unsigned,
		"missing exp": noExpiry,
		"empty":       "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidToken), "got %v", err)
		})
	}
}
