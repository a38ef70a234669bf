package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/api/respond"
	"github.com/stratford/music-platform/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every account, newest first. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  respond.Envelope{data=[]userListItem}
// @Failure      401  {object}  respond.Envelope
// @Failure      403  {object}  respond.Envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userListItem, 0, len(users))
	for _, u := range users {
		out = append(out, toUserListItem(u))
	}
	return respond.OK(c, http.StatusOK, respond.Data{"users": out})
}
