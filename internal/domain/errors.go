package domain

import "errors"

// Sentinel errors classifying every failure the services report. Handlers
// map them to HTTP statuses; anything unwrapped is treated as internal.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)
