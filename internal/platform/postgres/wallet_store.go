package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/store"
)

// WalletStore implements store.WalletStore on PostgreSQL.
type WalletStore struct {
	db DBTX
}

// NewWalletStore creates a new PostgreSQL implementation of the WalletStore
// interface.
func NewWalletStore(db DBTX) *WalletStore {
	return &WalletStore{db: db}
}

// Ensure WalletStore implements store.WalletStore interface.
var _ store.WalletStore = (*WalletStore)(nil)

// CreateWallet implements store.WalletStore.CreateWallet.
func (s *WalletStore) CreateWallet(ctx context.Context, userID uuid.UUID) error {
	const query = `
		INSERT INTO wallets (user_id, token_balance)
		VALUES ($1, 0)`

	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetBalance implements store.WalletStore.GetBalance.
func (s *WalletStore) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT token_balance
		FROM wallets
		WHERE user_id = $1`

	var balance int64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, store.ErrWalletNotFound
		}
		return 0, fmt.Errorf("failed to scan balance: %w", err)
	}
	return balance, nil
}

// AddToBalance implements store.WalletStore.AddToBalance. The GREATEST clamp
// keeps the stored balance non-negative.
func (s *WalletStore) AddToBalance(ctx context.Context, userID uuid.UUID, delta int64) (int64, error) {
	const query = `
		UPDATE wallets
		SET token_balance = GREATEST(token_balance + $2, 0)
		WHERE user_id = $1
		RETURNING token_balance`

	var balance int64
	if err := s.db.QueryRowContext(ctx, query, userID, delta).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, store.ErrWalletNotFound
		}
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}
	return balance, nil
}

// WithTx implements store.WalletStore.WithTx.
func (s *WalletStore) WithTx(tx *sql.Tx) store.WalletStore {
	return &WalletStore{db: tx}
}
