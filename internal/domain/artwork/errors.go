package artwork

import "errors"

var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrNotAllowed      = errors.New("only admins and artists can modify artworks")
	ErrNotOwner        = errors.New("you can only manage your own artworks")
	ErrNoFields        = errors.New("no fields to update")

	// ErrNoChange is reported when an update statement affects zero rows.
	// This conflates "row gone since the initial load" with "values already
	// identical"; kept as a distinct error so callers can decide.
	ErrNoChange = errors.New("artwork was not modified")
)

// FieldValidationError carries per-field validation failures
type FieldValidationError struct {
	Fields map[string]string
}

func (e *FieldValidationError) Error() string { return "validation failed" }
