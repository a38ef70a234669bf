package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stratford/music-platform/internal/core/domain"
)

const (
	collectionIssues         = "magazine_issues"
	collectionArticles       = "articles"
	collectionPlaylists      = "playlists"
	collectionAdvertisements = "advertisements"
)

// ContentRepository reads the editorial collections. Writes happen out of
// band.
type ContentRepository struct {
	issues    *mongo.Collection
	articles  *mongo.Collection
	playlists *mongo.Collection
	ads       *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		issues:    db.Collection(collectionIssues),
		articles:  db.Collection(collectionArticles),
		playlists: db.Collection(collectionPlaylists),
		ads:       db.Collection(collectionAdvertisements),
	}
}

func (r *ContentRepository) PublishedIssues(ctx context.Context) ([]*domain.MagazineIssue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.MagazineIssue](ctx, r.issues, bson.M{"status": domain.IssuePublished},
		options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}}))
}

func (r *ContentRepository) IssueByID(ctx context.Context, id string) (*domain.MagazineIssue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var is domain.MagazineIssue
	if err := r.issues.FindOne(ctx, bson.M{"_id": id}).Decode(&is); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, fmt.Errorf("find issue: %w", err)
	}
	return &is, nil
}

func (r *ContentRepository) ArticleCounts(ctx context.Context, issueIDs []string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return countBy(ctx, r.articles, "issue_id", issueIDs)
}

func (r *ContentRepository) PublishedArticles(ctx context.Context, issueID string) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Article](ctx, r.articles,
		bson.M{"issue_id": issueID, "status": domain.IssuePublished},
		options.Find().SetSort(bson.D{{Key: "published_at", Value: 1}}))
}

func (r *ContentRepository) Playlists(ctx context.Context) ([]*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Playlist](ctx, r.playlists, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *ContentRepository) PlaylistByID(ctx context.Context, id string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Playlist
	if err := r.playlists.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("find playlist: %w", err)
	}
	return &p, nil
}

func (r *ContentRepository) Advertisements(ctx context.Context) ([]*domain.Advertisement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Advertisement](ctx, r.ads, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}
