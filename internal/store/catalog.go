package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
)

// CatalogStore defines the interface for the lesson catalog: categories,
// lessons and their quiz question sets.
type CatalogStore interface {
	// Categories lists the lesson categories with their lesson counts.
	Categories(ctx context.Context) ([]domain.Category, error)

	// LessonsByCategory lists the lessons of a category, identified by its
	// slug. An unknown category yields an empty list, not an error.
	LessonsByCategory(ctx context.Context, categoryID string) ([]domain.Lesson, error)

	// GetLesson retrieves one lesson, including its content.
	// Returns ErrLessonNotFound if the lesson does not exist.
	GetLesson(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)

	// QuestionsByLesson retrieves a lesson's quiz question set in order.
	// Returns ErrQuizNotFound when the lesson has no questions.
	QuestionsByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.Question, error)

	// CreateLesson saves a lesson and its question set. Used by seeding.
	CreateLesson(ctx context.Context, lesson *domain.Lesson, questions []domain.Question) error

	// WithTx returns a CatalogStore that uses the provided transaction.
	WithTx(tx *sql.Tx) CatalogStore
}

// ProgressStore defines the interface for per-user lesson completion markers.
type ProgressStore interface {
	// MarkLessonComplete records that the user completed the lesson.
	// Idempotent: repeated calls update the completion timestamp.
	MarkLessonComplete(ctx context.Context, userID, lessonID uuid.UUID) error

	// CompletedLessonCount counts the user's completed lessons.
	CompletedLessonCount(ctx context.Context, userID uuid.UUID) (int, error)

	// WithTx returns a ProgressStore that uses the provided transaction.
	WithTx(tx *sql.Tx) ProgressStore
}
