package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/store"
)

// CatalogStore implements store.CatalogStore on PostgreSQL. Question options
// are stored as a JSON array in a single column.
type CatalogStore struct {
	db DBTX
}

// NewCatalogStore creates a new PostgreSQL implementation of the
// CatalogStore interface.
func NewCatalogStore(db DBTX) *CatalogStore {
	return &CatalogStore{db: db}
}

// Ensure CatalogStore implements store.CatalogStore interface.
var _ store.CatalogStore = (*CatalogStore)(nil)

// Categories implements store.CatalogStore.Categories.
func (s *CatalogStore) Categories(ctx context.Context) ([]domain.Category, error) {
	const query = `
		SELECT category, COUNT(id)
		FROM lessons
		GROUP BY category
		ORDER BY category`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.Name, &cat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.ID = domain.CategorySlug(cat.Name)
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return cats, nil
}

// LessonsByCategory implements store.CatalogStore.LessonsByCategory.
func (s *CatalogStore) LessonsByCategory(ctx context.Context, categoryID string) ([]domain.Lesson, error) {
	const query = `
		SELECT id, title, subject, category
		FROM lessons
		WHERE LOWER(category) = LOWER($1)
		ORDER BY title`

	rows, err := s.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lessons []domain.Lesson
	for rows.Next() {
		var lesson domain.Lesson
		if err := rows.Scan(&lesson.ID, &lesson.Title, &lesson.Subject, &lesson.Category); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lessons: %w", err)
	}
	return lessons, nil
}

// GetLesson implements store.CatalogStore.GetLesson.
func (s *CatalogStore) GetLesson(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	const query = `
		SELECT id, title, subject, category, content
		FROM lessons
		WHERE id = $1`

	var lesson domain.Lesson
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID, &lesson.Title, &lesson.Subject, &lesson.Category, &lesson.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to scan lesson: %w", err)
	}
	return &lesson, nil
}

// QuestionsByLesson implements store.CatalogStore.QuestionsByLesson.
func (s *CatalogStore) QuestionsByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.Question, error) {
	const query = `
		SELECT id, prompt, options, correct_option
		FROM quiz_questions
		WHERE lesson_id = $1
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		var options []byte
		if err := rows.Scan(&q.ID, &q.Prompt, &options, &q.CorrectOption); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode question options: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, store.ErrQuizNotFound
	}
	return questions, nil
}

// CreateLesson implements store.CatalogStore.CreateLesson.
func (s *CatalogStore) CreateLesson(ctx context.Context, lesson *domain.Lesson, questions []domain.Question) error {
	if err := lesson.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, store.ErrInvalidEntity)
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return fmt.Errorf("question %d: %v: %w", i, err, store.ErrInvalidEntity)
		}
	}

	const lessonQuery = `
		INSERT INTO lessons (id, title, subject, category, content)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := s.db.ExecContext(ctx, lessonQuery,
		lesson.ID, lesson.Title, lesson.Subject, lesson.Category, lesson.Content); err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	const questionQuery = `
		INSERT INTO quiz_questions (id, lesson_id, position, prompt, options, correct_option)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for i, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to encode question options: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, questionQuery,
			q.ID, lesson.ID, i, q.Prompt, options, q.CorrectOption); err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
	}
	return nil
}

// WithTx implements store.CatalogStore.WithTx.
func (s *CatalogStore) WithTx(tx *sql.Tx) store.CatalogStore {
	return &CatalogStore{db: tx}
}
