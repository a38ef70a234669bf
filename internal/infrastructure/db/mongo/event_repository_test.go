package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stratford/music-platform/internal/core/domain"
)

func TestEventFilter_Empty(t *testing.T) {
	if got := eventFilter(domain.EventFilter{}); len(got) != 0 {
		t.Fatalf("expected empty filter, got %v", got)
	}
}

func TestEventFilter_DayWindowAndSearch(t *testing.T) {
	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	got := eventFilter(domain.EventFilter{
		Status:         domain.EventPublished,
		Category:       domain.CategoryTheatre,
		From:           from,
		To:             to,
		Search:         "a.b",
		SearchVenueIDs: []string{"v1"},
	})

	if got["status"] != domain.EventPublished || got["category"] != domain.CategoryTheatre {
		t.Errorf("unexpected equality clauses: %v", got)
	}
	window, ok := got["start_time"].(bson.M)
	if !ok || window["$gte"] != from || window["$lt"] != to {
		t.Errorf("unexpected start_time clause: %v", got["start_time"])
	}

	or, ok := got["$or"].(bson.A)
	if !ok || len(or) != 3 {
		t.Fatalf("expected three $or branches, got %v", got["$or"])
	}
	re := or[0].(bson.M)["title"].(primitive.Regex)
	if re.Pattern != `a\.b` || re.Options != "i" {
		t.Errorf("search must be literal and case-insensitive, got %+v", re)
	}
}

func TestEventFilter_SearchWithoutVenueMatches(t *testing.T) {
	got := eventFilter(domain.EventFilter{Search: "jazz"})
	if or := got["$or"].(bson.A); len(or) != 2 {
		t.Fatalf("expected title and description branches only, got %v", or)
	}
}
