package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
)

// WalletStore defines the interface for the server-side token balance.
// The balance is a trusted counter: it is only ever moved through
// AddToBalance, inside the same transaction as the business event that
// justifies the movement.
type WalletStore interface {
	// CreateWallet creates a zero-balance wallet for a new user.
	CreateWallet(ctx context.Context, userID uuid.UUID) error

	// GetBalance returns the user's current balance.
	// Returns ErrWalletNotFound if the user has no wallet.
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)

	// AddToBalance moves the balance by delta (positive or negative) and
	// returns the new value. A negative result clamps to zero.
	AddToBalance(ctx context.Context, userID uuid.UUID, delta int64) (int64, error)

	// WithTx returns a WalletStore that uses the provided transaction.
	WithTx(tx *sql.Tx) WalletStore
}

// RewardStore defines the interface for quiz results and token grants.
type RewardStore interface {
	// SaveQuizResult persists one graded attempt.
	SaveQuizResult(ctx context.Context, result *domain.QuizResult) error

	// AddReward persists one token grant.
	AddReward(ctx context.Context, reward *domain.Reward) error

	// QuizCount counts the user's graded attempts.
	QuizCount(ctx context.Context, userID uuid.UUID) (int, error)

	// TotalEarned sums the user's lifetime token grants.
	TotalEarned(ctx context.Context, userID uuid.UUID) (int64, error)

	// WithTx returns a RewardStore that uses the provided transaction.
	WithTx(tx *sql.Tx) RewardStore
}
