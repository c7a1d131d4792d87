package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/events"
	"github.com/Great2008/reads-web-app/internal/gateway"
)

// Manager resolves and tracks the session state. It is the only component
// allowed to transition it; subscribers (navigation, wallet) react to the
// transitions it publishes.
//
// Ordering guarantee: the state is assigned, and the epoch bumped, before any
// subscriber runs. Subscribers are invoked synchronously in subscription
// order, so work they trigger (such as the wallet's automatic refresh) always
// observes the terminal state.
type Manager struct {
	gw     gateway.BackendGateway
	creds  CredentialStore
	hub    *events.Hub[Snapshot]
	logger *slog.Logger

	mu    sync.Mutex
	state State
	user  *domain.User
	epoch uint64
}

// NewManager creates a Manager in the Initializing state.
func NewManager(gw gateway.BackendGateway, creds CredentialStore, logger *slog.Logger) *Manager {
	return &Manager{
		gw:     gw,
		creds:  creds,
		hub:    events.NewHub[Snapshot](logger),
		logger: logger.With("component", "session_manager"),
		state:  StateInitializing,
	}
}

// Snapshot returns the current session state, identity and epoch.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, User: m.user, Epoch: m.epoch}
}

// Epoch returns the current session epoch for stale-response guards.
func (m *Manager) Epoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

// Subscribe registers fn to receive every session transition. The returned
// subscription must be cancelled on teardown; no callbacks arrive after
// Cancel returns.
func (m *Manager) Subscribe(fn func(Snapshot)) *events.Subscription[Snapshot] {
	return m.hub.Subscribe(fn)
}

// Initialize attempts to recover an existing session from the stored bearer
// credential. It always resolves to a terminal state: absence of a credential
// or a rejected credential resolves Unauthenticated, a network failure
// degrades to Unauthenticated while keeping the credential for a later retry.
func (m *Manager) Initialize(ctx context.Context) error {
	cred, err := m.creds.Load()
	if err != nil {
		m.logger.Warn("failed to load stored credential", "error", err)
		m.transition(StateUnauthenticated, nil)
		return nil
	}
	if cred == "" {
		m.logger.Debug("no stored credential, resolving unauthenticated")
		m.transition(StateUnauthenticated, nil)
		return nil
	}

	m.gw.SetCredential(cred)
	user, err := m.gw.Me(ctx)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrSessionExpired):
			m.logger.Info("stored credential rejected, clearing session")
			m.discardCredential()
		default:
			// Backend unreachable: degrade to unauthenticated but keep the
			// credential so a later restart can still recover the session.
			m.logger.Warn("session recovery failed", "error", err)
			m.gw.ClearCredential()
		}
		m.transition(StateUnauthenticated, nil)
		return nil
	}

	m.logger.Info("session recovered", "user_id", user.ID, "email", user.Email)
	m.transition(StateAuthenticated, user)
	return nil
}

// Login authenticates with the backend. On success the returned bearer
// credential is stored for future Initialize calls and the session becomes
// Authenticated. On failure the state stays Unauthenticated and no credential
// is stored.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	cred, user, err := m.gw.Login(ctx, email, password)
	if err != nil {
		m.logger.Debug("login rejected", "email", email, "error", err)
		// State stays Unauthenticated; no credential is stored.
		return fmt.Errorf("login failed: %w", err)
	}

	if err := m.creds.Save(cred); err != nil {
		// The live session still works; only recovery after restart degrades.
		m.logger.Warn("failed to persist credential", "error", err)
	}

	m.logger.Info("login succeeded", "user_id", user.ID, "email", user.Email)
	m.transition(StateAuthenticated, user)
	return nil
}

// Signup registers a new account and logs it in. The password/confirmation
// match is checked locally first: a mismatch raises ErrPasswordMismatch
// without contacting the backend.
func (m *Manager) Signup(ctx context.Context, name, email, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}

	cred, user, err := m.gw.Signup(ctx, name, email, password)
	if err != nil {
		m.logger.Debug("signup rejected", "email", email, "error", err)
		return fmt.Errorf("signup failed: %w", err)
	}

	if err := m.creds.Save(cred); err != nil {
		m.logger.Warn("failed to persist credential", "error", err)
	}

	m.logger.Info("signup succeeded", "user_id", user.ID, "email", user.Email)
	m.transition(StateAuthenticated, user)
	return nil
}

// Logout clears the stored credential and transitions to Unauthenticated.
// Subscribers reset themselves in reaction: the wallet zeroes its balance and
// navigation returns to the auth screen. The epoch bump makes any in-flight
// refresh for the previous session discard its response.
func (m *Manager) Logout() error {
	m.discardCredential()
	m.logger.Info("logged out")
	m.transition(StateUnauthenticated, nil)
	return nil
}

// ExpireSession handles a bearer credential rejected on a call made after
// login: it discards all authenticated state, exactly like Logout, but logs
// the cause.
func (m *Manager) ExpireSession() {
	m.discardCredential()
	m.logger.Warn("session expired, credential discarded")
	m.transition(StateUnauthenticated, nil)
}

func (m *Manager) discardCredential() {
	if err := m.creds.Clear(); err != nil {
		m.logger.Warn("failed to clear stored credential", "error", err)
	}
	m.gw.ClearCredential()
}

// transition assigns the new state under the lock, then notifies subscribers
// outside it. Exactly one goroutine drives transitions in the cooperative
// model, so notification order matches transition order.
func (m *Manager) transition(state State, user *domain.User) {
	m.mu.Lock()
	from := m.state
	m.state = state
	m.user = user
	m.epoch++
	snap := Snapshot{State: state, User: user, Epoch: m.epoch}
	m.mu.Unlock()

	m.logger.Debug("session transition",
		"from", from.String(),
		"to", state.String(),
		"epoch", snap.Epoch)

	m.hub.Publish(snap)
}
