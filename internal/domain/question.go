package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Question is a single multiple-choice quiz question attached to a lesson.
// Options are ordered; CorrectOption is the index of the right answer.
type Question struct {
	ID            uuid.UUID `json:"id"`
	Prompt        string    `json:"prompt"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correct_option"`
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return ErrCorrectOptionOutOfRange
	}
	return nil
}
