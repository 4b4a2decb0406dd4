// Package apperr defines the error taxonomy shared across services. Handlers
// map these sentinels to HTTP statuses; usecases wrap them with %w so callers
// can classify failures with errors.Is.
package apperr

import "errors"

var (
	// ErrValidation marks caller-correctable input problems such as a
	// malformed identifier or phone number.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an absent user, trip, alert, or contact.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a state conflict such as a duplicate signup email
	// or a transition on an already-terminal trip.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized marks an invalid/expired token or wrong password.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUpstream marks a failure in an external provider (maps, SMS
	// gateway, LLM).
	ErrUpstream = errors.New("upstream error")

	// ErrPersistence marks a store failure; always fatal to the request.
	ErrPersistence = errors.New("persistence error")
)
