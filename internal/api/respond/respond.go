// Package respond renders the JSON envelope every API response shares:
// {"success", "data", "error", "details", "message"}.
package respond

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the canonical response body.
type Envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Details []FieldError `json:"details,omitempty"`
	Message string       `json:"message,omitempty"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Data is a named payload, rendered as data: {<name>: value}.
type Data map[string]any

// OK writes a successful response carrying data.
func OK(c echo.Context, status int, data Data) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// Message writes a successful response carrying only a message.
func Message(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: true, Message: msg})
}

// Fail writes an error response.
func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: false, Error: msg})
}
