// Package session owns the identity/session lifecycle. The Manager is the
// sole writer of "who is logged in": every other component observes the
// session through subscriptions and read-only snapshots.
package session

import (
	"github.com/Great2008/reads-web-app/internal/domain"
)

// State is the tagged variant over the session lifecycle. It starts
// Initializing at process start, resolves once to a terminal state, and may
// re-enter Unauthenticated on logout or credential expiry.
type State int

const (
	// StateInitializing means session recovery has not resolved yet. The UI
	// shows a loading state, never the login or dashboard screens.
	StateInitializing State = iota

	// StateUnauthenticated means no identity is resolved.
	StateUnauthenticated

	// StateAuthenticated means an identity is resolved and authenticated
	// calls may proceed.
	StateAuthenticated
)

// String returns a human-readable state name for logging.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session at a point in time. User is
// non-nil exactly when State is StateAuthenticated. Epoch increments on every
// transition and keys the stale-response guard: a response captured under an
// older epoch must be discarded, not applied.
type Snapshot struct {
	State State
	User  *domain.User
	Epoch uint64
}

// Authenticated reports whether the snapshot carries a resolved identity.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated
}
