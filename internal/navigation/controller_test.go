package navigation

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/gateway"
	"github.com/Great2008/reads-web-app/internal/session"
)

func TestControllerStartsOnLoading(t *testing.T) {
	t.Parallel()

	c := NewController(slog.Default())
	assert.Equal(t, State{View: ViewLoading}, c.State())
}

func TestNavigatePublishes(t *testing.T) {
	t.Parallel()

	c := NewController(slog.Default())

	var got []State
	sub := c.Subscribe(func(s State) { got = append(got, s) })
	defer sub.Cancel()

	c.Navigate(ViewLearn, SubViewCategories, nil)

	require.Len(t, got, 1)
	assert.Equal(t, ViewLearn, got[0].View)
	assert.Equal(t, SubViewCategories, got[0].SubView)
}

func TestNavigateUnknownViewFallsBack(t *testing.T) {
	t.Parallel()

	c := NewController(slog.Default())
	c.Navigate(View("bogus"), SubViewQuiz, &LessonPayload{})

	// Unknown views land on the dashboard with all sub-state dropped.
	state := c.State()
	assert.Equal(t, ViewDashboard, state.View)
	assert.Equal(t, SubViewNone, state.SubView)
	assert.Nil(t, state.Payload)
}

func TestViewChangeCollapsesSubState(t *testing.T) {
	t.Parallel()

	c := NewController(slog.Default())
	lesson := domain.Lesson{Title: "Fractions", Category: "math"}
	c.Navigate(ViewLearn, SubViewContent, &LessonPayload{Lesson: lesson})

	// Moving to another top-level view without a sub-view clears payload.
	c.Navigate(ViewWallet, SubViewNone, &LessonPayload{Lesson: lesson})

	state := c.State()
	assert.Equal(t, ViewWallet, state.View)
	assert.Equal(t, SubViewNone, state.SubView)
	assert.Nil(t, state.Payload)
}

func TestSubViewChangeKeepsPayload(t *testing.T) {
	t.Parallel()

	c := NewController(slog.Default())
	lesson := domain.Lesson{Title: "Fractions", Category: "math"}

	c.Navigate(ViewLearn, SubViewContent, &LessonPayload{Lesson: lesson})
	c.Navigate(ViewLearn, SubViewQuiz, &LessonPayload{Lesson: lesson})

	state := c.State()
	assert.Equal(t, SubViewQuiz, state.SubView)
	payload, ok := state.Payload.(*LessonPayload)
	require.True(t, ok)
	assert.Equal(t, "Fractions", payload.Lesson.Title)
}

// navGateway is the minimal BackendGateway for driving session transitions.
type navGateway struct {
	gateway.BackendGateway
	user *domain.User
}

func (g *navGateway) Login(ctx context.Context, email, password string) (gateway.Credential, *domain.User, error) {
	return "token", g.user, nil
}
func (g *navGateway) Me(ctx context.Context) (*domain.User, error) { return g.user, nil }
func (g *navGateway) SetCredential(gateway.Credential)             {}
func (g *navGateway) ClearCredential()                             {}

func TestBindSessionRoutesTransitions(t *testing.T) {
	t.Parallel()

	user := &domain.User{Email: "ada@example.com", DisplayName: "Ada"}
	m := session.NewManager(&navGateway{user: user}, session.NewMemoryCredentialStore(), slog.Default())
	c := NewController(slog.Default())
	sub := c.BindSession(m)
	defer sub.Cancel()

	// The loading view stays mounted until the session resolves.
	assert.Equal(t, ViewLoading, c.State().View)

	require.NoError(t, m.Login(context.Background(), "ada@example.com", "password123"))
	assert.Equal(t, ViewDashboard, c.State().View)

	require.NoError(t, m.Logout())
	state := c.State()
	assert.Equal(t, ViewAuth, state.View)
	assert.Equal(t, SubViewLogin, state.SubView)
}
