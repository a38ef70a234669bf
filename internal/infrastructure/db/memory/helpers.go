package memory

import (
	"strings"
	"time"

	"github.com/stratford/music-platform/internal/core/domain"
)

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func cloneVenue(v *domain.Venue) *domain.Venue {
	c := *v
	if v.Capacity != nil {
		capacity := *v.Capacity
		c.Capacity = &capacity
	}
	c.Amenities = append([]string{}, v.Amenities...)
	return &c
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	if e.Price != nil {
		p := *e.Price
		c.Price = &p
	}
	return &c
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// paginate slices items to page p. A zero limit returns everything.
func paginate[T any](items []T, p domain.Page) []T {
	if p.Limit <= 0 {
		return items
	}
	skip := p.Skip()
	if skip >= len(items) {
		return []T{}
	}
	end := skip + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// publishedAfter orders nil publication dates last.
func publishedAfter(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.After(*b)
	}
}
