package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/store"
)

// RewardStore implements store.RewardStore on PostgreSQL.
type RewardStore struct {
	db DBTX
}

// NewRewardStore creates a new PostgreSQL implementation of the RewardStore
// interface.
func NewRewardStore(db DBTX) *RewardStore {
	return &RewardStore{db: db}
}

// Ensure RewardStore implements store.RewardStore interface.
var _ store.RewardStore = (*RewardStore)(nil)

// SaveQuizResult implements store.RewardStore.SaveQuizResult.
func (s *RewardStore) SaveQuizResult(ctx context.Context, result *domain.QuizResult) error {
	const query = `
		INSERT INTO quiz_results (id, user_id, lesson_id, score, correct_count, wrong_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		result.ID, result.UserID, result.LessonID,
		result.Score, result.CorrectCount, result.WrongCount, result.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}
	return nil
}

// AddReward implements store.RewardStore.AddReward.
func (s *RewardStore) AddReward(ctx context.Context, reward *domain.Reward) error {
	const query = `
		INSERT INTO rewards (id, user_id, lesson_id, tokens_earned, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		reward.ID, reward.UserID, reward.LessonID, reward.TokensEarned, reward.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save reward: %w", err)
	}
	return nil
}

// QuizCount implements store.RewardStore.QuizCount.
func (s *RewardStore) QuizCount(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM quiz_results
		WHERE user_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quiz results: %w", err)
	}
	return count, nil
}

// TotalEarned implements store.RewardStore.TotalEarned.
func (s *RewardStore) TotalEarned(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(tokens_earned), 0)
		FROM rewards
		WHERE user_id = $1`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum rewards: %w", err)
	}
	return total, nil
}

// WithTx implements store.RewardStore.WithTx.
func (s *RewardStore) WithTx(tx *sql.Tx) store.RewardStore {
	return &RewardStore{db: tx}
}
