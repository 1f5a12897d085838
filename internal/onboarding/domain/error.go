package domain

import "errors"

// ErrCountryNotAllowed is returned before any database write when the
// submitted country falls outside the active market lock.
var ErrCountryNotAllowed = errors.New("country not available yet")

// ErrMissingIdentity is returned when the session carries no user or no
// organization binding. Writing against an empty org id would collapse
// unrelated accounts into one shared tenant.
var ErrMissingIdentity = errors.New("user and organization ids are required")
