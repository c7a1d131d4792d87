package session

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/gateway"
)

// fakeGateway implements the slice of BackendGateway the manager exercises.
type fakeGateway struct {
	gateway.BackendGateway

	loginCred gateway.Credential
	loginUser *domain.User
	loginErr  error

	meUser *domain.User
	meErr  error

	credential gateway.Credential
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (gateway.Credential, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	f.credential = f.loginCred
	return f.loginCred, f.loginUser, nil
}

func (f *fakeGateway) Signup(ctx context.Context, name, email, password string) (gateway.Credential, *domain.User, error) {
	return f.Login(ctx, email, password)
}

func (f *fakeGateway) Me(ctx context.Context) (*domain.User, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meUser, nil
}

func (f *fakeGateway) SetCredential(cred gateway.Credential) { f.credential = cred }
func (f *fakeGateway) ClearCredential()                      { f.credential = "" }

func testUser() *domain.User {
	return &domain.User{ID: uuid.New(), Email: "ada@example.com", DisplayName: "Ada"}
}

func TestInitializeWithoutCredential(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	m := NewManager(gw, NewMemoryCredentialStore(), slog.Default())

	assert.Equal(t, StateInitializing, m.Snapshot().State)

	require.NoError(t, m.Initialize(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
	assert.Nil(t, m.Snapshot().User)
}

func TestInitializeRecoversSession(t *testing.T) {
	t.Parallel()

	user := testUser()
	gw := &fakeGateway{meUser: user}
	creds := NewMemoryCredentialStore()
	require.NoError(t, creds.Save("stored-token"))

	m := NewManager(gw, creds, slog.Default())
	require.NoError(t, m.Initialize(context.Background()))

	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, user.ID, snap.User.ID)
	assert.Equal(t, gateway.Credential("stored-token"), gw.credential)
}

func TestInitializeRejectedCredentialIsDiscarded(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{meErr: gateway.ErrSessionExpired}
	creds := NewMemoryCredentialStore()
	require.NoError(t, creds.Save("stale-token"))

	m := NewManager(gw, creds, slog.Default())
	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
	stored, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestInitializeNetworkFailureKeepsCredential(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{meErr: gateway.ErrNetwork}
	creds := NewMemoryCredentialStore()
	require.NoError(t, creds.Save("maybe-valid"))

	m := NewManager(gw, creds, slog.Default())
	require.NoError(t, m.Initialize(context.Background()))

	// Degrades to unauthenticated but keeps the credential for a later retry.
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
	stored, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, gateway.Credential("maybe-valid"), stored)
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	user := testUser()
	gw := &fakeGateway{loginCred: "fresh-token", loginUser: user}
	creds := NewMemoryCredentialStore()
	m := NewManager(gw, creds, slog.Default())

	var transitions []State
	sub := m.Subscribe(func(snap Snapshot) { transitions = append(transitions, snap.State) })
	defer sub.Cancel()

	require.NoError(t, m.Login(context.Background(), "ada@example.com", "password123"))

	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, user.ID, snap.User.ID)
	assert.Equal(t, []State{StateAuthenticated}, transitions)

	stored, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, gateway.Credential("fresh-token"), stored)
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{loginErr: gateway.ErrInvalidCredentials}
	creds := NewMemoryCredentialStore()
	m := NewManager(gw, creds, slog.Default())
	require.NoError(t, m.Initialize(context.Background()))

	var notifications int
	sub := m.Subscribe(func(Snapshot) { notifications++ })
	defer sub.Cancel()

	err := m.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrInvalidCredentials)

	// A failed login is not a transition: no duplicate notification fires.
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
	assert.Equal(t, 0, notifications)

	stored, loadErr := creds.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, stored)
}

func TestSignupPasswordMismatch(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	m := NewManager(gw, NewMemoryCredentialStore(), slog.Default())

	err := m.Signup(context.Background(), "Ada", "ada@example.com", "password123", "password124")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.ErrorIs(t, err, gateway.ErrValidation)
}

func TestLogoutBumpsEpochAndClearsCredential(t *testing.T) {
	t.Parallel()

	user := testUser()
	gw := &fakeGateway{loginCred: "token", loginUser: user}
	creds := NewMemoryCredentialStore()
	m := NewManager(gw, creds, slog.Default())

	require.NoError(t, m.Login(context.Background(), "ada@example.com", "password123"))
	epochAfterLogin := m.Epoch()

	require.NoError(t, m.Logout())

	snap := m.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Nil(t, snap.User)
	assert.Greater(t, m.Epoch(), epochAfterLogin)
	assert.Empty(t, gw.credential)

	stored, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestExpireSessionBehavesLikeLogout(t *testing.T) {
	t.Parallel()

	user := testUser()
	gw := &fakeGateway{loginCred: "token", loginUser: user}
	creds := NewMemoryCredentialStore()
	m := NewManager(gw, creds, slog.Default())
	require.NoError(t, m.Login(context.Background(), "ada@example.com", "password123"))

	m.ExpireSession()

	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
	stored, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}
