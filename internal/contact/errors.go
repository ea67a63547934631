package contact

import "errors"

var (
	// ErrContactNotFound is returned when no submission matches a lookup.
	ErrContactNotFound = errors.New("contact submission not found")
)
