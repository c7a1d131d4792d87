package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Category groups lessons for browsing. The ID is a stable slug derived from
// the category name; Count is the number of lessons the category contains.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategorySlug derives the stable category identifier from a category name.
func CategorySlug(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lesson is a single unit of learnable content within a category.
type Lesson struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Subject  string    `json:"subject"`
	Category string    `json:"category"`
	Content  string    `json:"content,omitempty"`
}

// Validate checks if the Lesson has valid data.
func (l *Lesson) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return ErrEmptyLessonTitle
	}
	if strings.TrimSpace(l.Category) == "" {
		return ErrEmptyLessonCategory
	}
	return nil
}
