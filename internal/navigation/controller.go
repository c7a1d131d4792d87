package navigation

import (
	"log/slog"
	"sync"

	"github.com/Great2008/reads-web-app/internal/events"
	"github.com/Great2008/reads-web-app/internal/session"
)

// Controller is the navigation state machine. Navigate is a total function:
// no view/sub-view combination is rejected, unknown views land on the
// dashboard fallback.
type Controller struct {
	logger *slog.Logger
	hub    *events.Hub[State]

	mu    sync.Mutex
	state State
}

// NewController creates a Controller showing the loading view, which is what
// the UI renders until the session resolves to a terminal state.
func NewController(logger *slog.Logger) *Controller {
	return &Controller{
		logger: logger.With("component", "navigation_controller"),
		hub:    events.NewHub[State](logger),
		state:  State{View: ViewLoading},
	}
}

// State returns the current screen triple.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive every navigation change; the renderer is
// the primary subscriber. Cancel the subscription on teardown.
func (c *Controller) Subscribe(fn func(State)) *events.Subscription[State] {
	return c.hub.Subscribe(fn)
}

// Navigate moves to the given view, sub-view and payload. A view change
// without an explicit sub-view collapses any in-flight sub-state of the
// previous view: sub-view resets to empty and payload to nil. Unknown views
// fall back to the dashboard.
func (c *Controller) Navigate(view View, subView SubView, payload Payload) {
	if !view.Valid() {
		c.logger.Warn("unknown view requested, falling back", "view", string(view))
		view = ViewDashboard
		subView = SubViewNone
		payload = nil
	}

	c.mu.Lock()
	if view != c.state.View && subView == SubViewNone {
		payload = nil
	}
	c.state = State{View: view, SubView: subView, Payload: payload}
	next := c.state
	c.mu.Unlock()

	c.logger.Debug("navigated",
		"view", string(next.View),
		"sub_view", string(next.SubView),
		"has_payload", next.Payload != nil)

	c.hub.Publish(next)
}

// BindSession routes session transitions to their screens: an authenticated
// session lands on the dashboard, an unauthenticated one on the auth screen.
// While the session is still initializing the loading view stays mounted.
func (c *Controller) BindSession(m *session.Manager) *events.Subscription[session.Snapshot] {
	return m.Subscribe(func(snap session.Snapshot) {
		switch snap.State {
		case session.StateAuthenticated:
			c.Navigate(ViewDashboard, SubViewNone, nil)
		case session.StateUnauthenticated:
			c.Navigate(ViewAuth, SubViewLogin, nil)
		case session.StateInitializing:
			// Nothing to do: the loading view is already mounted.
		}
	})
}
