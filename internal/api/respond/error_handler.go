package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stratford/music-platform/internal/core/domain"
)

const (
	msgServerError      = "Server error"
	msgValidationFailed = "Validation failed"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps echo errors, validation failures and domain errors to status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the envelope with success=false.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrInvalidSchedule) {
			err = Invalid("endTime", "End time must be after start time")
		}
		var ie *domain.InvalidInputError
		if errors.As(err, &ie) {
			err = fromViolations(ie.Violations)
		}
		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, Envelope{Error: msgValidationFailed, Details: ve.Details})
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = Fail(c, code, msg)
	}
}

// Status reports the HTTP status and client message err maps to, without
// logging. Unknown errors map to 500.
func Status(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		// Unknown routes answer 404 whatever the method.
		if he.Code == http.StatusMethodNotAllowed {
			return http.StatusNotFound, "Route not found"
		}
		return he.Code, httpErrorMessage(he)
	}

	var ie *domain.InvalidInputError
	if errors.As(err, &ie) {
		return http.StatusBadRequest, msgValidationFailed
	}

	var oe *domain.OwnershipError
	if errors.As(err, &oe) {
		if errors.Is(oe, domain.ErrVenueNotOwned) {
			return http.StatusForbidden, fmt.Sprintf("You can only %s your own venue", oe.Action)
		}
		return http.StatusForbidden, fmt.Sprintf("You can only %s events for your own venue", oe.Action)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User with this email already exists"
	case errors.Is(err, domain.ErrVenueAlreadyExists):
		return http.StatusBadRequest, "User can only have one venue"
	case errors.Is(err, domain.ErrInvalidSchedule):
		return http.StatusBadRequest, msgValidationFailed
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "Invalid token"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrVenueNotFound):
		return http.StatusNotFound, "Venue not found"
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "Event not found"
	case errors.Is(err, domain.ErrIssueNotFound):
		return http.StatusNotFound, "Magazine issue not found"
	case errors.Is(err, domain.ErrPlaylistNotFound):
		return http.StatusNotFound, "Playlist not found"
	}

	return http.StatusInternalServerError, msgServerError
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	code, msg := Status(err)
	if code < http.StatusInternalServerError {
		return code, msg
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgServerError
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch he.Code {
	case http.StatusNotFound:
		if he.Message == http.StatusText(http.StatusNotFound) {
			return "Route not found"
		}
	case http.StatusRequestEntityTooLarge:
		return "Request body too large"
	case http.StatusInternalServerError:
		return msgServerError
	}
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	return fmt.Sprintf("%v", he.Message)
}
