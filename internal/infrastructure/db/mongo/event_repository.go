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

const collectionEvents = "events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Event
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": upd.UpdatedAt.UTC()}
	setIfPresent(set, "title", upd.Title)
	setIfPresent(set, "description", upd.Description)
	setIfPresent(set, "start_time", upd.StartTime)
	setIfPresent(set, "end_time", upd.EndTime)
	setIfPresent(set, "price", upd.Price)
	setIfPresent(set, "category", upd.Category)
	setIfPresent(set, "status", upd.Status)

	var e domain.Event
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) DeleteByVenue(ctx context.Context, venueID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"venue_id": venueID})
	if err != nil {
		return 0, fmt.Errorf("delete venue events: %w", err)
	}
	return res.DeletedCount, nil
}

// List returns one page of matching events by start time, and the total
// match count.
func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := eventFilter(f)
	events, err := findAll[domain.Event](ctx, r.col, filter,
		pageOptions(options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}), f.Page))
	if err != nil {
		return nil, 0, err
	}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	return events, total, nil
}

func (r *EventRepository) Upcoming(ctx context.Context, venueID string, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findAll[domain.Event](ctx, r.col,
		bson.M{"venue_id": venueID, "status": domain.EventPublished},
		options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}).SetLimit(int64(limit)))
}

func (r *EventRepository) CountByVenue(ctx context.Context, venueIDs []string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return countBy(ctx, r.col, "venue_id", venueIDs)
}

func eventFilter(f domain.EventFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.VenueID != "" {
		filter["venue_id"] = f.VenueID
	}

	start := bson.M{}
	if !f.From.IsZero() {
		start["$gte"] = f.From
	}
	if !f.To.IsZero() {
		start["$lt"] = f.To
	}
	if len(start) > 0 {
		filter["start_time"] = start
	}

	if f.Search != "" {
		re := containsCI(f.Search)
		or := bson.A{bson.M{"title": re}, bson.M{"description": re}}
		if len(f.SearchVenueIDs) > 0 {
			or = append(or, bson.M{"venue_id": bson.M{"$in": f.SearchVenueIDs}})
		}
		filter["$or"] = or
	}
	return filter
}
