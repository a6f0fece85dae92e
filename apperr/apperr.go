// Package apperr defines the error taxonomy shared across services and
// controllers. Services wrap these sentinels with context; controllers map
// them to HTTP status codes.
package apperr

import "errors"

var (
	// ErrValidation covers missing or invalid required fields.
	ErrValidation = errors.New("validation error")
	// ErrConflict means the slot is already held by an approved booking.
	ErrConflict = errors.New("conflict")
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAuth covers missing, malformed or expired tokens.
	ErrAuth = errors.New("unauthorized")
	// ErrNetwork means the external assistant backend was unreachable.
	// Callers recover from it by falling back to the local heuristics, so
	// it should never surface to an API client on the assistant paths.
	ErrNetwork = errors.New("network error")
)

// Code returns the wire error code for an error, matching the envelope the
// frontend expects.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrAuth):
		return "AUTH_INVALID"
	case errors.Is(err, ErrNetwork):
		return "NETWORK_ERROR"
	default:
		return "SERVER_ERROR"
	}
}
