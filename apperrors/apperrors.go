// Package apperrors defines the four failure kinds the service layer
// reports. Errors are wrapped at the point of detection and matched
// with errors.Is at the transport boundary.
package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned when a referenced article, user or tag does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned when a role or lifecycle rule forbids the action.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict is returned on duplicates: a second mark, an already attached
// tag, a taken username or email.
var ErrConflict = errors.New("conflict")

// ErrValidation is returned for malformed input: out-of-range mark values,
// short tag names, bad search filters.
var ErrValidation = errors.New("validation failed")

// StatusCode maps an error to the HTTP status the controllers answer with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
