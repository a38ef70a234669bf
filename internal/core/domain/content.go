package domain

import "time"

// IssueStatus is the publication state of a magazine issue or article.
type IssueStatus string

const (
	IssueDraft     IssueStatus = "DRAFT"
	IssuePublished IssueStatus = "PUBLISHED"
	IssueArchived  IssueStatus = "ARCHIVED"
)

// MagazineIssue is one monthly edition of the magazine.
type MagazineIssue struct {
	ID          string      `json:"id" bson:"_id"`
	Title       string      `json:"title" bson:"title"`
	MonthYear   string      `json:"monthYear" bson:"month_year"`
	CoverImage  string      `json:"coverImage,omitempty" bson:"cover_image,omitempty"`
	PublishedAt *time.Time  `json:"publishedAt,omitempty" bson:"published_at,omitempty"`
	Status      IssueStatus `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"createdAt" bson:"created_at"`
}

// Article belongs to exactly one issue.
type Article struct {
	ID            string      `json:"id" bson:"_id"`
	IssueID       string      `json:"issueId" bson:"issue_id"`
	Title         string      `json:"title" bson:"title"`
	Content       string      `json:"content" bson:"content"`
	AuthorID      string      `json:"authorId" bson:"author_id"`
	FeaturedImage string      `json:"featuredImage,omitempty" bson:"featured_image,omitempty"`
	PublishedAt   *time.Time  `json:"publishedAt,omitempty" bson:"published_at,omitempty"`
	Status        IssueStatus `json:"status" bson:"status"`
	CreatedAt     time.Time   `json:"createdAt" bson:"created_at"`
}

// PlaylistTrack is a single entry of a curated playlist.
type PlaylistTrack struct {
	Title    string `json:"title" bson:"title"`
	Artist   string `json:"artist" bson:"artist"`
	Duration string `json:"duration" bson:"duration"`
	URL      string `json:"url,omitempty" bson:"url,omitempty"`
}

// Playlist is a curated list of tracks.
type Playlist struct {
	ID          string          `json:"id" bson:"_id"`
	CuratorID   string          `json:"curatorId" bson:"curator_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Tracks      []PlaylistTrack `json:"tracks" bson:"tracks"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`
}

// AdType is the placement of an advertisement.
type AdType string

const (
	AdBanner     AdType = "BANNER"
	AdSidebar    AdType = "SIDEBAR"
	AdFeatured   AdType = "FEATURED"
	AdClassified AdType = "CLASSIFIED"
)

// PaymentStatus tracks whether an advertisement has been paid for.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Advertisement is a paid placement, optionally tied to an issue.
type Advertisement struct {
	ID            string        `json:"id" bson:"_id"`
	AdvertiserID  string        `json:"advertiserId" bson:"advertiser_id"`
	IssueID       string        `json:"issueId,omitempty" bson:"issue_id,omitempty"`
	AdType        AdType        `json:"adType" bson:"ad_type"`
	Content       string        `json:"content" bson:"content"`
	PaymentStatus PaymentStatus `json:"paymentStatus" bson:"payment_status"`
	CreatedAt     time.Time     `json:"createdAt" bson:"created_at"`
}
