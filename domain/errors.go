package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition    = errors.New("status transition is not allowed")
	ErrOverrideUnauthorized = errors.New("override requires system-wide override authority")
	ErrRecordLocked         = errors.New("decision is locked by the fiscal period close")
	ErrUnsupportedAction    = errors.New("action is not supported for this request type")
	ErrInvalidOrderBy       = errors.New("invalid order by")
)

// BackendError is a non-2xx response of the HR backend
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}
