package handler

import (
	"time"

	"github.com/stratford/music-platform/internal/core/domain"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN VENUE ARTIST READER"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name    *string `json:"name" validate:"omitnil,min=1,max=100"`
	Bio     *string `json:"bio" validate:"omitnil,max=2000"`
	Phone   *string `json:"phone" validate:"omitnil,max=50"`
	Address *string `json:"address" validate:"omitnil,max=300"`
}

// authUser is the account as returned by register and login.
type authUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type authResponse struct {
	User  authUser `json:"user"`
	Token string   `json:"token"`
}

// userListItem is an account in the admin directory.
type userListItem struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAuthUser(u *domain.User, withCreated bool) authUser {
	out := authUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
	if withCreated {
		created := u.CreatedAt
		out.CreatedAt = &created
	}
	return out
}

func toUserListItem(u *domain.User) userListItem {
	return userListItem{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}
