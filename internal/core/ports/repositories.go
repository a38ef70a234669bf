package ports

import (
	"context"

	"github.com/stratford/music-platform/internal/core/domain"
)

// UserFinder is the read side of the credential store used by the gate.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// UserRepository persists user accounts. Email is unique.
type UserRepository interface {
	UserFinder
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateProfile(ctx context.Context, id string, upd domain.ProfileUpdate) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// VenueOwnerFinder resolves the venue owned by a user.
type VenueOwnerFinder interface {
	FindByOwner(ctx context.Context, userID string) (*domain.Venue, error)
}

// VenueRepository persists venues. user_id is unique.
type VenueRepository interface {
	VenueOwnerFinder
	FindByID(ctx context.Context, id string) (*domain.Venue, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Venue, error)
	// MatchingName returns the ids of venues whose name contains search,
	// case-insensitively.
	MatchingName(ctx context.Context, search string) ([]string, error)
	Create(ctx context.Context, v *domain.Venue) error
	Update(ctx context.Context, id string, upd domain.VenueUpdate) (*domain.Venue, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f domain.VenueFilter) ([]*domain.Venue, int64, error)
}

// EventRepository persists events.
type EventRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	DeleteByVenue(ctx context.Context, venueID string) (int64, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, int64, error)
	// Upcoming returns up to limit published events of a venue, earliest first.
	Upcoming(ctx context.Context, venueID string, limit int) ([]*domain.Event, error)
	CountByVenue(ctx context.Context, venueIDs []string) (map[string]int64, error)
}

// ContentRepository reads the editorial collections.
type ContentRepository interface {
	PublishedIssues(ctx context.Context) ([]*domain.MagazineIssue, error)
	IssueByID(ctx context.Context, id string) (*domain.MagazineIssue, error)
	ArticleCounts(ctx context.Context, issueIDs []string) (map[string]int64, error)
	PublishedArticles(ctx context.Context, issueID string) ([]*domain.Article, error)
	Playlists(ctx context.Context) ([]*domain.Playlist, error)
	PlaylistByID(ctx context.Context, id string) (*domain.Playlist, error)
	Advertisements(ctx context.Context) ([]*domain.Advertisement, error)
}
