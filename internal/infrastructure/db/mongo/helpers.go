package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stratford/music-platform/internal/core/domain"
)

// containsCI matches values containing s, case-insensitively. s is treated
// literally.
func containsCI(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// pageOptions applies skip and limit for p. A zero limit means no limit.
func pageOptions(opts *options.FindOptions, p domain.Page) *options.FindOptions {
	if p.Limit > 0 {
		opts.SetSkip(int64(p.Skip())).SetLimit(int64(p.Limit))
	}
	return opts
}

// setIfPresent adds field=*v to set when v is non-nil.
func setIfPresent[T any](set bson.M, field string, v *T) {
	if v != nil {
		set[field] = *v
	}
}

// countBy groups documents whose field is in ids and counts them per id.
func countBy(ctx context.Context, col *mongo.Collection, field string, ids []string) (map[string]int64, error) {
	out := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: bson.M{"$in": ids}}}},
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
	}
	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s counts: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.ID] = row.Count
	}
	return out, cur.Err()
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return out, nil
}
