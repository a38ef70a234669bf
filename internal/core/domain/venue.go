package domain

import "time"

// Venue is a physical location that hosts events. Each user owns at most one.
type Venue struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"user_id"`
	Name        string    `json:"name" bson:"name"`
	Address     string    `json:"address" bson:"address"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Website     string    `json:"website,omitempty" bson:"website,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Capacity    *int      `json:"capacity,omitempty" bson:"capacity,omitempty"`
	Amenities   []string  `json:"amenities" bson:"amenities"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// OwnedBy reports whether userID owns the venue.
func (v *Venue) OwnedBy(userID string) bool {
	return v != nil && userID != "" && v.UserID == userID
}

// VenueSummary is the venue projection embedded in event payloads.
type VenueSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Description string   `json:"description,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

// Summary returns the short projection used in listings.
func (v *Venue) Summary() *VenueSummary {
	if v == nil {
		return nil
	}
	return &VenueSummary{ID: v.ID, Name: v.Name, Address: v.Address, Phone: v.Phone, Website: v.Website}
}

// Detail returns the projection used on a single event page.
func (v *Venue) Detail() *VenueSummary {
	s := v.Summary()
	if s == nil {
		return nil
	}
	s.Description = v.Description
	s.Capacity = v.Capacity
	s.Amenities = v.Amenities
	return s
}

// VenueUpdate carries the optional fields of a venue edit.
type VenueUpdate struct {
	Name        *string
	Address     *string
	Phone       *string
	Website     *string
	Description *string
	Capacity    *int
	Amenities   *[]string
	UpdatedAt   time.Time
}

// VenueFilter narrows a venue listing.
type VenueFilter struct {
	Search string
	Page   Page
}
