package domain

import "errors"

// ErrNotFound is returned when a referenced record, day, stop, or POI does
// not exist in the current state or in the database.
// The storage service maps this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (e.g. missing record key, blank collection name).
// The storage service maps this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
