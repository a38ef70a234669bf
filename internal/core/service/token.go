package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/stratford/music-platform/internal/clock"
	"github.com/stratford/music-platform/internal/core/domain"
)

// TokenTTL is how long an access token stays valid after issuance.
const TokenTTL = 24 * time.Hour

// ErrMissingSecret is returned when the token service is built without a
// signing secret.
var ErrMissingSecret = errors.New("token signing secret is not configured")

type accessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens with a shared secret.
// Tokens are stateless: nothing is persisted and nothing is revoked.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewTokenService(secret string, ttl time.Duration, clk clock.Clock) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = TokenTTL
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, clock: clk}, nil
}

// Issue signs a token asserting the user's id, email and role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.clock.Now()
	claims := accessClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. Every failure unwraps to
// domain.ErrInvalidToken.
func (s *TokenService) Verify(raw string) (*domain.Claims, error) {
	var claims accessClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
