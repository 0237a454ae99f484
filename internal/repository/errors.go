package repository

import "errors"

var (
	// ErrNotFound is returned for any missing aggregate.
	ErrNotFound = errors.New("record not found")

	// ErrOverlap is returned when the in-transaction availability re-check
	// finds a conflicting booking before insert.
	ErrOverlap = errors.New("overlapping booking exists")
)
