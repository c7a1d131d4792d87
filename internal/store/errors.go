package store

import "errors"

// Common store errors. Implementations translate driver-specific failures
// into these so callers can classify with errors.Is.
var (
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when creating or updating a user would
	// violate email uniqueness.
	ErrEmailExists = errors.New("email already exists")

	// ErrLessonNotFound is returned when a lesson lookup matches nothing.
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrQuizNotFound is returned when a lesson has no quiz questions.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrWalletNotFound is returned when a user has no wallet row.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being written.
	ErrInvalidEntity = errors.New("invalid entity")
)
