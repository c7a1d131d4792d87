// Package wallet owns the displayed token balance. The Store is its single
// writer: every other component reads the balance or queues changes through
// Credit/Debit, never by direct assignment.
package wallet

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Great2008/reads-web-app/internal/events"
	"github.com/Great2008/reads-web-app/internal/gateway"
	"github.com/Great2008/reads-web-app/internal/session"
)

// sessionSource is the slice of the session manager the store depends on.
type sessionSource interface {
	Snapshot() session.Snapshot
}

// Store is the single source of truth for the displayed balance. Credit and
// Debit are synchronous and purely local, so the balance is read-consistent
// within a navigation transition: a change takes effect before the next
// render pass, never queued behind it.
type Store struct {
	gw      gateway.BackendGateway
	session sessionSource
	hub     *events.Hub[int64]
	logger  *slog.Logger

	mu      sync.Mutex
	balance int64
}

// NewStore creates a Store with a zero balance.
func NewStore(gw gateway.BackendGateway, sess sessionSource, logger *slog.Logger) *Store {
	return &Store{
		gw:      gw,
		session: sess,
		hub:     events.NewHub[int64](logger),
		logger:  logger.With("component", "wallet_store"),
	}
}

// Balance returns the current balance. Never negative.
func (s *Store) Balance() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Subscribe registers fn to receive every balance change.
func (s *Store) Subscribe(fn func(int64)) *events.Subscription[int64] {
	return s.hub.Subscribe(fn)
}

// Refresh fetches the balance from the backend and replaces the local value
// unconditionally (last-write-wins from the server; no local reconciliation).
// The fetch is keyed by session epoch: if the session transitioned while the
// request was in flight (logout, expiry, a different login) the late response
// is discarded, not applied. Fetch failures keep the last-known value and
// never block navigation.
func (s *Store) Refresh(ctx context.Context) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		s.logger.Debug("refresh skipped, session not authenticated")
		return nil
	}

	balance, err := s.gw.Balance(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return err
		}
		s.logger.Warn("balance refresh failed, keeping last-known value", "error", err)
		return nil
	}

	s.mu.Lock()
	if s.session.Snapshot().Epoch != snap.Epoch {
		s.mu.Unlock()
		s.logger.Info("discarding stale balance response",
			"stale_epoch", snap.Epoch)
		return nil
	}
	s.balance = balance
	s.mu.Unlock()

	s.logger.Debug("balance refreshed", "balance", balance)
	s.hub.Publish(balance)
	return nil
}

// Credit increases the balance by amount. Amount must be non-negative.
// The call is local: when the credit comes from a quiz submission the
// authoritative balance already reflects the grant server-side, and Credit
// only keeps the displayed value in sync without an extra round trip.
func (s *Store) Credit(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	s.mu.Lock()
	s.balance += amount
	balance := s.balance
	s.mu.Unlock()

	s.logger.Debug("credited", "amount", amount, "balance", balance)
	s.hub.Publish(balance)
	return nil
}

// Debit decreases the balance by amount, clamping at zero: the balance is
// never observably negative.
func (s *Store) Debit(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	s.mu.Lock()
	s.balance -= amount
	if s.balance < 0 {
		s.balance = 0
	}
	balance := s.balance
	s.mu.Unlock()

	s.logger.Debug("debited", "amount", amount, "balance", balance)
	s.hub.Publish(balance)
	return nil
}

// Reset zeroes the balance. Runs on the logout path.
func (s *Store) Reset() {
	s.mu.Lock()
	s.balance = 0
	s.mu.Unlock()

	s.logger.Debug("balance reset")
	s.hub.Publish(0)
}

// Bind wires the store to session transitions: entering Authenticated fires
// an automatic Refresh (the manager notifies only once the new state is
// assigned), and leaving it resets the balance.
func (s *Store) Bind(m *session.Manager) *events.Subscription[session.Snapshot] {
	return m.Subscribe(func(snap session.Snapshot) {
		switch snap.State {
		case session.StateAuthenticated:
			if err := s.Refresh(context.Background()); err != nil {
				s.logger.Warn("automatic refresh failed", "error", err)
			}
		case session.StateUnauthenticated:
			s.Reset()
		case session.StateInitializing:
		}
	})
}
