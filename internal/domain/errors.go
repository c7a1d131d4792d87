// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUserID is returned when a user ID is missing.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyDisplayName is returned when a display name is missing.
	ErrEmptyDisplayName = errors.New("display name cannot be empty")

	// ErrPasswordTooShort is returned when a password is below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's practical limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrEmptyPassword is returned when neither a password nor a hash is present.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrEmptyLessonTitle is returned when a lesson has no title.
	ErrEmptyLessonTitle = errors.New("lesson title cannot be empty")

	// ErrEmptyLessonCategory is returned when a lesson has no category.
	ErrEmptyLessonCategory = errors.New("lesson category cannot be empty")

	// ErrEmptyPrompt is returned when a quiz question has no prompt text.
	ErrEmptyPrompt = errors.New("question prompt cannot be empty")

	// ErrTooFewOptions is returned when a quiz question offers fewer than two options.
	ErrTooFewOptions = errors.New("question must have at least two options")

	// ErrCorrectOptionOutOfRange is returned when the correct option index does
	// not point at one of the question's options.
	ErrCorrectOptionOutOfRange = errors.New("correct option index out of range")
)
