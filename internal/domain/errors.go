package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, or exists but belongs to another user.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when a resource exists but the caller does not own
// its parent trip. Only the stop-scoped itinerary operations report it;
// everything else masks ownership failures as ErrNotFound.
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized is returned when a bearer token is missing, malformed,
// expired, or names a user that no longer exists.
// Handlers should map this to HTTP 401 with a WWW-Authenticate challenge.
var ErrUnauthorized = errors.New("unauthorized")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an insert collides with a unique constraint
// (duplicate email or username on registration).
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
