package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stratford/music-platform/internal/clock"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

type UserService struct {
	repo  ports.UserRepository
	clean Sanitizer
	clock clock.Clock
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, clean Sanitizer, clk clock.Clock, log zerolog.Logger) *UserService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &UserService{repo: repo, clean: clean, clock: clk, log: log}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of upd. An empty update returns
// the current profile unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.User, error) {
	upd = domain.ProfileUpdate{
		Name:    s.clean.CleanPtr(upd.Name),
		Bio:     s.clean.CleanPtr(upd.Bio),
		Phone:   s.clean.CleanPtr(upd.Phone),
		Address: s.clean.CleanPtr(upd.Address),
	}
	if upd.Empty() {
		return s.repo.FindByID(ctx, userID)
	}

	var bad violations
	bad.required("name", "Name", upd.Name)
	if err := bad.err(); err != nil {
		return nil, err
	}
	upd.UpdatedAt = s.clock.Now()

	user, err := s.repo.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

// List returns every account, newest first.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
