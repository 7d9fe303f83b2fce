package repository

import "errors"

// ErrNotFound signals a fetch that matched no row. Callers translate it
// to an empty state or a 404; it is never wrapped.
var ErrNotFound = errors.New("not found")
