package models

import "errors"

// Shared sentinels so that packages consuming store results can match them
// without importing the store.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)
