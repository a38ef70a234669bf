package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/api/respond"
	"github.com/stratford/music-platform/internal/core/ports"
)

// ContentHandler serves the read-only magazine, playlist and advertisement
// routes.
type ContentHandler struct {
	contentService ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Issues godoc
//
// @Summary      List published magazine issues
// @Tags         magazine
// @Produce      json
// @Success      200  {object}  respond.Envelope{data=[]ports.IssueListItem}
// @Router       /magazine/issues [get]
func (h *ContentHandler) Issues(c echo.Context) error {
	issues, err := h.contentService.Issues(c.Request().Context())
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"issues": issues})
}

// Issue godoc
//
// @Summary      Get magazine issue with published articles
// @Tags         magazine
// @Produce      json
// @Param        id   path      string  true  "Issue ID"
// @Success      200  {object}  respond.Envelope{data=ports.IssueDetail}
// @Failure      404  {object}  respond.Envelope
// @Router       /magazine/issues/{id} [get]
func (h *ContentHandler) Issue(c echo.Context) error {
	issue, err := h.contentService.Issue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"issue": issue})
}

// Playlists godoc
//
// @Summary      List playlists
// @Tags         playlists
// @Produce      json
// @Success      200  {object}  respond.Envelope{data=[]ports.PlaylistWithCurator}
// @Router       /playlists [get]
func (h *ContentHandler) Playlists(c echo.Context) error {
	playlists, err := h.contentService.Playlists(c.Request().Context())
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"playlists": playlists})
}

// Playlist godoc
//
// @Summary      Get playlist
// @Tags         playlists
// @Produce      json
// @Param        id   path      string  true  "Playlist ID"
// @Success      200  {object}  respond.Envelope{data=ports.PlaylistWithCurator}
// @Failure      404  {object}  respond.Envelope
// @Router       /playlists/{id} [get]
func (h *ContentHandler) Playlist(c echo.Context) error {
	playlist, err := h.contentService.Playlist(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"playlist": playlist})
}

// Advertisements godoc
//
// @Summary      List advertisements
// @Tags         advertisements
// @Produce      json
// @Success      200  {object}  respond.Envelope{data=[]ports.AdvertisementWithAdvertiser}
// @Router       /advertisements [get]
func (h *ContentHandler) Advertisements(c echo.Context) error {
	ads, err := h.contentService.Advertisements(c.Request().Context())
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"advertisements": ads})
}
