package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/api/metrics"
	"github.com/stratford/music-platform/internal/api/respond"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

type EventHandler struct {
	eventService ports.EventService
}

func NewEventHandler(eventService ports.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List returns one page of the calendar.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        category  query     string  false  "Event category"
// @Param        status    query     string  false  "Event status (default PUBLISHED)"
// @Param        date      query     string  false  "Calendar day, YYYY-MM-DD or ISO 8601"
// @Param        venueId   query     string  false  "Venue ID"
// @Param        search    query     string  false  "Matches title, description or venue name"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  respond.Envelope{data=ports.EventList}
// @Failure      400       {object}  respond.Envelope
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	var q listEventsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	in := ports.ListEventsInput{
		Category: domain.EventCategory(q.Category),
		Status:   domain.EventStatus(q.Status),
		VenueID:  q.VenueID,
		Search:   q.Search,
		Page:     domain.NewPage(q.Page, q.Limit),
	}
	if q.Date != "" {
		day, err := parseDay(q.Date)
		if err != nil {
			return respond.Invalid("date", "Date must be an ISO 8601 date")
		}
		in.Date = day
	}

	list, err := h.eventService.List(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"events": list.Events, "pagination": list.Pagination})
}

// Today returns the published events starting today.
//
// @Summary      Today's events
// @Tags         events
// @Produce      json
// @Success      200  {object}  respond.Envelope{data=[]ports.EventWithVenue}
// @Router       /events/today [get]
func (h *EventHandler) Today(c echo.Context) error {
	events, err := h.eventService.Today(c.Request().Context())
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"events": events})
}

// Get returns one event with its venue.
//
// @Summary      Get event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  respond.Envelope{data=ports.EventWithVenue}
// @Failure      404  {object}  respond.Envelope
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.eventService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"event": event})
}

// Create schedules an event at a venue the caller owns.
//
// @Summary      Create event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event"
// @Success      201   {object}  respond.Envelope{data=ports.EventWithVenue}
// @Failure      400   {object}  respond.Envelope
// @Failure      401   {object}  respond.Envelope
// @Failure      403   {object}  respond.Envelope
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	// Both timestamps already passed the iso8601 check.
	start, _ := parseTimestamp(req.StartTime)
	end, _ := parseTimestamp(req.EndTime)

	event, err := h.eventService.Create(c.Request().Context(), p, ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Price:       req.Price,
		Category:    domain.EventCategory(req.Category),
		VenueID:     req.VenueID,
		Status:      domain.EventStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.EventsCreatedTotal.WithLabelValues(req.Category).Inc()
	return respond.OK(c, http.StatusCreated, respond.Data{"event": event})
}

// Update edits an event at a venue the caller owns.
//
// @Summary      Update event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event ID"
// @Param        body  body      updateEventRequest  true  "Fields to change"
// @Success      200   {object}  respond.Envelope{data=ports.EventWithVenue}
// @Failure      400   {object}  respond.Envelope
// @Failure      403   {object}  respond.Envelope
// @Failure      404   {object}  respond.Envelope
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	upd := domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	if req.StartTime != nil {
		t, _ := parseTimestamp(*req.StartTime)
		upd.StartTime = &t
	}
	if req.EndTime != nil {
		t, _ := parseTimestamp(*req.EndTime)
		upd.EndTime = &t
	}
	if req.Category != nil {
		cat := domain.EventCategory(*req.Category)
		upd.Category = &cat
	}
	if req.Status != nil {
		st := domain.EventStatus(*req.Status)
		upd.Status = &st
	}

	event, err := h.eventService.Update(c.Request().Context(), p, c.Param("id"), upd)
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"event": event})
}

// Delete removes an event at a venue the caller owns.
//
// @Summary      Delete event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  respond.Envelope
// @Failure      403  {object}  respond.Envelope
// @Failure      404  {object}  respond.Envelope
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.eventService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return respond.Message(c, http.StatusOK, "Event deleted successfully")
}

// parseDay accepts a bare date or a full timestamp and keeps its calendar
// fields as written.
func parseDay(s string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
