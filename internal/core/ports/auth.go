package ports

import (
	"context"

	"github.com/stratford/music-platform/internal/core/domain"
)

// RegisterInput is the validated registration request.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthService registers and authenticates users.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier checks an access token's signature and expiry.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// UserService exposes profile and directory operations.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
