package repository

import "errors"

var (
	// ErrBackendUnavailable is returned by writes when no document store
	// is configured. Reads degrade to empty results instead.
	ErrBackendUnavailable = errors.New("backend not configured")

	// ErrNotFound marks a write aimed at a document that does not exist.
	// Plain lookups report absence as (nil, nil), not as this error.
	ErrNotFound = errors.New("document not found")
)
