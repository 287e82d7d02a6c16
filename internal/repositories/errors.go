package repositories

import "errors"

// ErrNotFound is returned by point lookups when no row matches the id.
// Services translate it into their own typed not-found failures.
var ErrNotFound = errors.New("record not found")
