package repository

import "errors"

// ErrNotFound is returned by Get/Lookup methods when the key has no entry.
var ErrNotFound = errors.New("not found")
