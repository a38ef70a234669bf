package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every collection relies on. The unique
// ones on users.email and venues.user_id are what serialize concurrent
// registrations and venue creation.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		collectionVenues: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		collectionEvents: {
			{Keys: bson.D{{Key: "venue_id", Value: 1}, {Key: "start_time", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "start_time", Value: 1}}},
		},
		collectionArticles: {
			{Keys: bson.D{{Key: "issue_id", Value: 1}, {Key: "published_at", Value: 1}}},
		},
		collectionIssues: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}}},
		},
	}

	for name, indexes := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
