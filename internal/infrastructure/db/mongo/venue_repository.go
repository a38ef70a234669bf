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

const collectionVenues = "venues"

// VenueRepository implements ports.VenueRepository. A unique index on
// user_id keeps each user to one venue even under concurrent creates.
type VenueRepository struct {
	col *mongo.Collection
}

func NewVenueRepository(db *mongo.Database) *VenueRepository {
	return &VenueRepository{col: db.Collection(collectionVenues)}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if v.Amenities == nil {
		v.Amenities = []string{}
	}
	if _, err := r.col.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrVenueAlreadyExists
		}
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id string) (*domain.Venue, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *VenueRepository) FindByOwner(ctx context.Context, userID string) (*domain.Venue, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *VenueRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Venue, error) {
	out := make(map[string]*domain.Venue, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	venues, err := findAll[domain.Venue](ctx, r.col, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, v := range venues {
		out[v.ID] = v
	}
	return out, nil
}

func (r *VenueRepository) MatchingName(ctx context.Context, search string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	venues, err := findAll[domain.Venue](ctx, r.col, bson.M{"name": containsCI(search)},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	return ids, nil
}

func (r *VenueRepository) Update(ctx context.Context, id string, upd domain.VenueUpdate) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": upd.UpdatedAt.UTC()}
	setIfPresent(set, "name", upd.Name)
	setIfPresent(set, "address", upd.Address)
	setIfPresent(set, "phone", upd.Phone)
	setIfPresent(set, "website", upd.Website)
	setIfPresent(set, "description", upd.Description)
	setIfPresent(set, "capacity", upd.Capacity)
	setIfPresent(set, "amenities", upd.Amenities)

	var v domain.Venue
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return &v, nil
}

func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}

// List returns one page of venues ordered by name, and the total match count.
func (r *VenueRepository) List(ctx context.Context, f domain.VenueFilter) ([]*domain.Venue, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Search != "" {
		re := containsCI(f.Search)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"address": re},
		}
	}

	venues, err := findAll[domain.Venue](ctx, r.col, filter,
		pageOptions(options.Find().SetSort(bson.D{{Key: "name", Value: 1}}), f.Page))
	if err != nil {
		return nil, 0, err
	}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count venues: %w", err)
	}
	return venues, total, nil
}

func (r *VenueRepository) findOne(ctx context.Context, filter bson.M) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Venue
	if err := r.col.FindOne(ctx, filter).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue: %w", err)
	}
	return &v, nil
}
