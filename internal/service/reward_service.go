package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/quiz"
	"github.com/Great2008/reads-web-app/internal/store"
)

// RewardService grades submitted quizzes and settles the resulting token
// reward. Result row, reward row and wallet balance move in one transaction
// so a crash can never credit tokens without the matching audit trail.
type RewardService struct {
	db          *sql.DB
	rewardStore store.RewardStore
	walletStore store.WalletStore
	policy      quiz.RewardPolicy
	logger      *slog.Logger
}

// NewRewardService creates a new RewardService with the given dependencies.
func NewRewardService(
	db *sql.DB,
	rewardStore store.RewardStore,
	walletStore store.WalletStore,
	policy quiz.RewardPolicy,
	logger *slog.Logger,
) *RewardService {
	return &RewardService{
		db:          db,
		rewardStore: rewardStore,
		walletStore: walletStore,
		policy:      policy,
		logger:      logger.With("component", "reward_service"),
	}
}

// SubmitQuiz records a graded quiz attempt for the user and credits the
// tokens the reward policy awards for it. Returns the stored result and the
// amount earned.
func (s *RewardService) SubmitQuiz(
	ctx context.Context,
	userID, lessonID uuid.UUID,
	correctCount, totalCount int,
) (*domain.QuizResult, int64, error) {
	if totalCount <= 0 || correctCount < 0 || correctCount > totalCount {
		return nil, 0, fmt.Errorf("correct %d of %d: %w", correctCount, totalCount, store.ErrInvalidEntity)
	}

	now := time.Now().UTC()
	result := &domain.QuizResult{
		ID:           uuid.New(),
		UserID:       userID,
		LessonID:     lessonID,
		Score:        correctCount * 100 / totalCount,
		CorrectCount: correctCount,
		WrongCount:   totalCount - correctCount,
		CreatedAt:    now,
	}

	earned := s.policy.Tokens(correctCount, totalCount)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.rewardStore.WithTx(tx).SaveQuizResult(ctx, result); err != nil {
			return err
		}

		if earned == 0 {
			return nil
		}

		reward := &domain.Reward{
			ID:           uuid.New(),
			UserID:       userID,
			LessonID:     lessonID,
			TokensEarned: earned,
			CreatedAt:    now,
		}
		if err := s.rewardStore.WithTx(tx).AddReward(ctx, reward); err != nil {
			return err
		}

		_, err := s.walletStore.WithTx(tx).AddToBalance(ctx, userID, earned)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info("quiz settled",
		"user_id", userID,
		"lesson_id", lessonID,
		"score", result.Score,
		"earned", earned)

	return result, earned, nil
}
