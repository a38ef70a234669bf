package domain

import "time"

const (
	RoleAdmin  = "ADMIN"
	RoleVenue  = "VENUE"
	RoleArtist = "ARTIST"
	RoleReader = "READER"
)

// Roles lists every role tag a user may carry.
var Roles = []string{RoleAdmin, RoleVenue, RoleArtist, RoleReader}

// ValidRole reports whether r is one of the known role tags.
func ValidRole(r string) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User models an account on the platform.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Name         string    `json:"name,omitempty" bson:"name,omitempty"`
	Role         string    `json:"role" bson:"role"`
	Bio          string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

// UserSummary is the public projection of a user embedded in other resources.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Summary projects u down to the fields other resources expose.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ProfileUpdate carries the optional fields a user may change on their own
// profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Name    *string
	Bio     *string
	Phone   *string
	Address *string
	// UpdatedAt is stamped by the service; it does not count as a change.
	UpdatedAt time.Time
}

// Empty reports whether the update carries no changes.
func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Bio == nil && p.Phone == nil && p.Address == nil
}

// Principal is the authenticated subject of a request, as asserted by a
// verified token.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the principal carries the administrative role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// Claims are the identity assertions embedded in an access token.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}
