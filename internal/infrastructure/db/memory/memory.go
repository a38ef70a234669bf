// Package memory provides in-process repositories with the same semantics
// as the Mongo ones. The service and router test suites run against them.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stratford/music-platform/internal/core/domain"
)

// Store holds every collection behind one lock.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*domain.User
	venues   map[string]*domain.Venue
	events   map[string]*domain.Event
	issues   map[string]*domain.MagazineIssue
	articles map[string]*domain.Article
	lists    map[string]*domain.Playlist
	ads      map[string]*domain.Advertisement
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*domain.User),
		venues:   make(map[string]*domain.Venue),
		events:   make(map[string]*domain.Event),
		issues:   make(map[string]*domain.MagazineIssue),
		articles: make(map[string]*domain.Article),
		lists:    make(map[string]*domain.Playlist),
		ads:      make(map[string]*domain.Advertisement),
	}
}

func (s *Store) Users() *Users     { return &Users{s} }
func (s *Store) Venues() *Venues   { return &Venues{s} }
func (s *Store) Events() *Events   { return &Events{s} }
func (s *Store) Content() *Content { return &Content{s} }

// Users implements ports.UserRepository.
type Users struct{ s *Store }

func (r *Users) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *Users) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*domain.User, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out[id] = cloneUser(u)
		}
	}
	return out, nil
}

func (r *Users) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *Users) UpdateProfile(_ context.Context, id string, upd domain.ProfileUpdate) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	setString(&u.Name, upd.Name)
	setString(&u.Bio, upd.Bio)
	setString(&u.Phone, upd.Phone)
	setString(&u.Address, upd.Address)
	u.UpdatedAt = upd.UpdatedAt
	return cloneUser(u), nil
}

func (r *Users) List(context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, cloneUser(u))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Venues implements ports.VenueRepository.
type Venues struct{ s *Store }

func (r *Venues) FindByID(_ context.Context, id string) (*domain.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	return cloneVenue(v), nil
}

func (r *Venues) FindByOwner(_ context.Context, userID string) (*domain.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, v := range r.s.venues {
		if v.UserID == userID {
			return cloneVenue(v), nil
		}
	}
	return nil, domain.ErrVenueNotFound
}

func (r *Venues) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*domain.Venue, len(ids))
	for _, id := range ids {
		if v, ok := r.s.venues[id]; ok {
			out[id] = cloneVenue(v)
		}
	}
	return out, nil
}

func (r *Venues) MatchingName(_ context.Context, search string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ids []string
	for _, v := range r.s.venues {
		if contains(v.Name, search) {
			ids = append(ids, v.ID)
		}
	}
	return ids, nil
}

func (r *Venues) Create(_ context.Context, v *domain.Venue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.venues {
		if existing.UserID == v.UserID {
			return domain.ErrVenueAlreadyExists
		}
	}
	r.s.venues[v.ID] = cloneVenue(v)
	return nil
}

func (r *Venues) Update(_ context.Context, id string, upd domain.VenueUpdate) (*domain.Venue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	setString(&v.Name, upd.Name)
	setString(&v.Address, upd.Address)
	setString(&v.Phone, upd.Phone)
	setString(&v.Website, upd.Website)
	setString(&v.Description, upd.Description)
	if upd.Capacity != nil {
		c := *upd.Capacity
		v.Capacity = &c
	}
	if upd.Amenities != nil {
		v.Amenities = append([]string(nil), (*upd.Amenities)...)
	}
	v.UpdatedAt = upd.UpdatedAt
	return cloneVenue(v), nil
}

func (r *Venues) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.venues[id]; !ok {
		return domain.ErrVenueNotFound
	}
	delete(r.s.venues, id)
	return nil
}

func (r *Venues) List(_ context.Context, f domain.VenueFilter) ([]*domain.Venue, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var matched []*domain.Venue
	for _, v := range r.s.venues {
		if f.Search == "" || contains(v.Name, f.Search) || contains(v.Description, f.Search) || contains(v.Address, f.Search) {
			matched = append(matched, cloneVenue(v))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return paginate(matched, f.Page), int64(len(matched)), nil
}

// Events implements ports.EventRepository.
type Events struct{ s *Store }

func (r *Events) FindByID(_ context.Context, id string) (*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

func (r *Events) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.events[e.ID] = cloneEvent(e)
	return nil
}

func (r *Events) Update(_ context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	setString(&e.Title, upd.Title)
	setString(&e.Description, upd.Description)
	if upd.StartTime != nil {
		e.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		e.EndTime = *upd.EndTime
	}
	if upd.Price != nil {
		p := *upd.Price
		e.Price = &p
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	e.UpdatedAt = upd.UpdatedAt
	return cloneEvent(e), nil
}

func (r *Events) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.s.events, id)
	return nil
}

func (r *Events) DeleteByVenue(_ context.Context, venueID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, e := range r.s.events {
		if e.VenueID == venueID {
			delete(r.s.events, id)
			n++
		}
	}
	return n, nil
}

func (r *Events) List(_ context.Context, f domain.EventFilter) ([]*domain.Event, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var matched []*domain.Event
	for _, e := range r.s.events {
		if matchEvent(e, f) {
			matched = append(matched, cloneEvent(e))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartTime.Before(matched[j].StartTime) })
	return paginate(matched, f.Page), int64(len(matched)), nil
}

func (r *Events) Upcoming(ctx context.Context, venueID string, limit int) ([]*domain.Event, error) {
	events, _, err := r.List(ctx, domain.EventFilter{
		VenueID: venueID,
		Status:  domain.EventPublished,
		Page:    domain.Page{Number: 1, Limit: limit},
	})
	return events, err
}

func (r *Events) CountByVenue(_ context.Context, venueIDs []string) (map[string]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	want := make(map[string]bool, len(venueIDs))
	for _, id := range venueIDs {
		want[id] = true
	}
	out := make(map[string]int64, len(venueIDs))
	for _, e := range r.s.events {
		if want[e.VenueID] {
			out[e.VenueID]++
		}
	}
	return out, nil
}

func matchEvent(e *domain.Event, f domain.EventFilter) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.VenueID != "" && e.VenueID != f.VenueID {
		return false
	}
	if !f.From.IsZero() && e.StartTime.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !e.StartTime.Before(f.To) {
		return false
	}
	if f.Search == "" {
		return true
	}
	if contains(e.Title, f.Search) || contains(e.Description, f.Search) {
		return true
	}
	for _, id := range f.SearchVenueIDs {
		if e.VenueID == id {
			return true
		}
	}
	return false
}

// Content implements ports.ContentRepository. Seed data is added with the
// Put helpers.
type Content struct{ s *Store }

func (r *Content) PutIssue(is *domain.MagazineIssue) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *is
	r.s.issues[is.ID] = &c
}

func (r *Content) PutArticle(a *domain.Article) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *a
	r.s.articles[a.ID] = &c
}

func (r *Content) PutPlaylist(p *domain.Playlist) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *p
	r.s.lists[p.ID] = &c
}

func (r *Content) PutAdvertisement(a *domain.Advertisement) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *a
	r.s.ads[a.ID] = &c
}

func (r *Content) PublishedIssues(context.Context) ([]*domain.MagazineIssue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*domain.MagazineIssue
	for _, is := range r.s.issues {
		if is.Status == domain.IssuePublished {
			c := *is
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return publishedAfter(out[i].PublishedAt, out[j].PublishedAt) })
	return out, nil
}

func (r *Content) IssueByID(_ context.Context, id string) (*domain.MagazineIssue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	is, ok := r.s.issues[id]
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	c := *is
	return &c, nil
}

func (r *Content) ArticleCounts(_ context.Context, issueIDs []string) (map[string]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	want := make(map[string]bool, len(issueIDs))
	for _, id := range issueIDs {
		want[id] = true
	}
	out := make(map[string]int64, len(issueIDs))
	for _, a := range r.s.articles {
		if want[a.IssueID] {
			out[a.IssueID]++
		}
	}
	return out, nil
}

func (r *Content) PublishedArticles(_ context.Context, issueID string) ([]*domain.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*domain.Article
	for _, a := range r.s.articles {
		if a.IssueID == issueID && a.Status == domain.IssuePublished {
			c := *a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return publishedAfter(out[j].PublishedAt, out[i].PublishedAt) })
	return out, nil
}

func (r *Content) Playlists(context.Context) ([]*domain.Playlist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Playlist, 0, len(r.s.lists))
	for _, p := range r.s.lists {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Content) PlaylistByID(_ context.Context, id string) (*domain.Playlist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.lists[id]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	c := *p
	return &c, nil
}

func (r *Content) Advertisements(context.Context) ([]*domain.Advertisement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Advertisement, 0, len(r.s.ads))
	for _, a := range r.s.ads {
		c := *a
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
