package domain

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid token")

	ErrVenueNotFound      = errors.New("venue not found")
	ErrVenueAlreadyExists = errors.New("user already owns a venue")
	ErrVenueNotOwned      = errors.New("venue not owned by user")

	ErrEventNotFound    = errors.New("event not found")
	ErrEventNotOwned    = errors.New("event not owned by user")
	ErrInvalidSchedule  = errors.New("event ends before it starts")
	ErrIssueNotFound    = errors.New("magazine issue not found")
	ErrPlaylistNotFound = errors.New("playlist not found")
)

// Action names the mutation an ownership check guarded.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// OwnershipError reports that the principal tried to mutate a resource it
// does not control. It unwraps to ErrVenueNotOwned or ErrEventNotOwned.
type OwnershipError struct {
	Action Action
	Err    error
}

func (e *OwnershipError) Error() string {
	return string(e.Action) + ": " + e.Err.Error()
}

func (e *OwnershipError) Unwrap() error { return e.Err }

// FieldViolation names an input field and what is wrong with it.
type FieldViolation struct {
	Field   string
	Message string
}

// InvalidInputError reports input that is unusable once normalized, such as
// a required name made only of markup or whitespace.
type InvalidInputError struct {
	Violations []FieldViolation
}

func (e *InvalidInputError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}
