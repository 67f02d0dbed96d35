package store

import "errors"

// Sentinel errors for storage operations. Returned errors wrap one of these
// together with the underlying cause, so callers match with errors.Is.
var (
	ErrConfig   = errors.New("invalid storage config")
	ErrIO       = errors.New("storage i/o failed")
	ErrParse    = errors.New("malformed storage file")
	ErrConflict = errors.New("storage file changed since it was loaded")
)
