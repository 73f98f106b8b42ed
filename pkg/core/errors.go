package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when a note ID is unknown to the backend.
	ErrNotFound = errors.New("note not found")

	// ErrTitleRequired is returned when a title is empty after trimming.
	ErrTitleRequired = errors.New("note title cannot be empty")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLen runes.
	ErrTitleTooLong = errors.New("note title too long")

	// ErrInvalidID is returned when an operation needs a positive note ID.
	ErrInvalidID = errors.New("note ID must be positive")
)
