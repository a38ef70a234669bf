package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/api/metrics"
	"github.com/stratford/music-platform/internal/api/middleware"
	"github.com/stratford/music-platform/internal/api/respond"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

type VenueHandler struct {
	venueService ports.VenueService
}

func NewVenueHandler(venueService ports.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// List returns one page of the venue directory.
//
// @Summary      List venues
// @Tags         venues
// @Produce      json
// @Param        search  query     string  false  "Matches name, description or address"
// @Param        page    query     int     false  "Page number"  minimum(1)
// @Param        limit   query     int     false  "Page size"    minimum(1)  maximum(100)
// @Success      200     {object}  respond.Envelope{data=ports.VenueList}
// @Failure      400     {object}  respond.Envelope
// @Router       /venues [get]
func (h *VenueHandler) List(c echo.Context) error {
	var q listQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	list, err := h.venueService.List(c.Request().Context(), q.Search, domain.NewPage(q.Page, q.Limit))
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"venues": list.Venues, "pagination": list.Pagination})
}

// Mine returns the venue owned by the caller.
//
// @Summary      Current user's venue
// @Tags         venues
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  respond.Envelope{data=domain.Venue}
// @Failure      401  {object}  respond.Envelope
// @Failure      403  {object}  respond.Envelope
// @Router       /venues/mine [get]
func (h *VenueHandler) Mine(c echo.Context) error {
	venue, ok := middleware.OwnedVenueFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "Venue access required")
	}
	return respond.OK(c, http.StatusOK, respond.Data{"venue": venue})
}

// Get returns a venue with its owner and next published events.
//
// @Summary      Get venue
// @Tags         venues
// @Produce      json
// @Param        id   path      string  true  "Venue ID"
// @Success      200  {object}  respond.Envelope{data=ports.VenueDetail}
// @Failure      404  {object}  respond.Envelope
// @Router       /venues/{id} [get]
func (h *VenueHandler) Get(c echo.Context) error {
	venue, err := h.venueService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"venue": venue})
}

// Create registers the caller's venue. Each user may own one.
//
// @Summary      Create venue
// @Tags         venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVenueRequest  true  "Venue"
// @Success      201   {object}  respond.Envelope{data=ports.VenueWithOwner}
// @Failure      400   {object}  respond.Envelope
// @Failure      401   {object}  respond.Envelope
// @Router       /venues [post]
func (h *VenueHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req createVenueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	venue, err := h.venueService.Create(c.Request().Context(), p, ports.CreateVenueInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
		Description: req.Description,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
	})
	if err != nil {
		return err
	}

	metrics.VenuesCreatedTotal.Inc()
	return respond.OK(c, http.StatusCreated, respond.Data{"venue": venue})
}

// Update edits the caller's venue.
//
// @Summary      Update venue
// @Tags         venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Venue ID"
// @Param        body  body      updateVenueRequest  true  "Fields to change"
// @Success      200   {object}  respond.Envelope{data=ports.VenueWithOwner}
// @Failure      400   {object}  respond.Envelope
// @Failure      403   {object}  respond.Envelope
// @Router       /venues/{id} [put]
func (h *VenueHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req updateVenueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	venue, err := h.venueService.Update(c.Request().Context(), p, c.Param("id"), domain.VenueUpdate{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
		Description: req.Description,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
	})
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"venue": venue})
}

// Delete removes the caller's venue and its events.
//
// @Summary      Delete venue
// @Tags         venues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Venue ID"
// @Success      200  {object}  respond.Envelope
// @Failure      403  {object}  respond.Envelope
// @Router       /venues/{id} [delete]
func (h *VenueHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.venueService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return respond.Message(c, http.StatusOK, "Venue deleted successfully")
}
