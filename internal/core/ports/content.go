package ports

import (
	"context"

	"github.com/stratford/music-platform/internal/core/domain"
)

// IssueListItem is an issue with its article count.
type IssueListItem struct {
	*domain.MagazineIssue
	Count struct {
		Articles int64 `json:"articles"`
	} `json:"_count"`
}

// ArticleWithAuthor is an article with its author summary.
type ArticleWithAuthor struct {
	*domain.Article
	Author *domain.UserSummary `json:"author,omitempty"`
}

// IssueDetail is an issue with its published articles.
type IssueDetail struct {
	*domain.MagazineIssue
	Articles []*ArticleWithAuthor `json:"articles"`
}

// PlaylistWithCurator is a playlist with its curator summary.
type PlaylistWithCurator struct {
	*domain.Playlist
	Curator *domain.UserSummary `json:"curator,omitempty"`
}

// AdvertisementWithAdvertiser is an advertisement with its advertiser summary.
type AdvertisementWithAdvertiser struct {
	*domain.Advertisement
	Advertiser *domain.UserSummary `json:"advertiser,omitempty"`
}

// ContentService serves the read-only editorial sections.
type ContentService interface {
	Issues(ctx context.Context) ([]*IssueListItem, error)
	Issue(ctx context.Context, id string) (*IssueDetail, error)
	Playlists(ctx context.Context) ([]*PlaylistWithCurator, error)
	Playlist(ctx context.Context, id string) (*PlaylistWithCurator, error)
	Advertisements(ctx context.Context) ([]*AdvertisementWithAdvertiser, error)
}
