package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/store"
)

// ProgressStore implements store.ProgressStore on PostgreSQL.
type ProgressStore struct {
	db DBTX
}

// NewProgressStore creates a new PostgreSQL implementation of the
// ProgressStore interface.
func NewProgressStore(db DBTX) *ProgressStore {
	return &ProgressStore{db: db}
}

// Ensure ProgressStore implements store.ProgressStore interface.
var _ store.ProgressStore = (*ProgressStore)(nil)

// MarkLessonComplete implements store.ProgressStore.MarkLessonComplete.
func (s *ProgressStore) MarkLessonComplete(ctx context.Context, userID, lessonID uuid.UUID) error {
	const query = `
		INSERT INTO lesson_progress (user_id, lesson_id, completed, completed_at)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (user_id, lesson_id)
		DO UPDATE SET completed = TRUE, completed_at = $3`

	if _, err := s.db.ExecContext(ctx, query, userID, lessonID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark lesson complete: %w", err)
	}
	return nil
}

// CompletedLessonCount implements store.ProgressStore.CompletedLessonCount.
func (s *ProgressStore) CompletedLessonCount(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM lesson_progress
		WHERE user_id = $1 AND completed`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completed lessons: %w", err)
	}
	return count, nil
}

// WithTx implements store.ProgressStore.WithTx.
func (s *ProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &ProgressStore{db: tx}
}
