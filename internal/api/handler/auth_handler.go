package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/api/metrics"
	"github.com/stratford/music-platform/internal/api/respond"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  respond.Envelope{data=authResponse}
// @Failure      400   {object}  respond.Envelope
// @Failure      500   {object}  respond.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("register").Inc()
	return respond.OK(c, http.StatusCreated, respond.Data{
		"user":  toAuthUser(user, true),
		"token": token,
	})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  respond.Envelope{data=authResponse}
// @Failure      400   {object}  respond.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginFailuresTotal.Inc()
		}
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	return respond.OK(c, http.StatusOK, respond.Data{
		"user":  toAuthUser(user, false),
		"token": token,
	})
}

// Me returns the caller's profile.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  respond.Envelope{data=domain.User}
// @Failure      401  {object}  respond.Envelope
// @Failure      403  {object}  respond.Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"user": user})
}

// UpdateMe edits the caller's profile. Omitted fields are unchanged.
//
// @Summary      Update current user profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  respond.Envelope{data=domain.User}
// @Failure      400   {object}  respond.Envelope
// @Failure      401   {object}  respond.Envelope
// @Router       /auth/me [put]
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), p.UserID, domain.ProfileUpdate{
		Name:    req.Name,
		Bio:     req.Bio,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return respond.OK(c, http.StatusOK, respond.Data{"user": user})
}
