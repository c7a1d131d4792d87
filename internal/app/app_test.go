package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/gateway"
	"github.com/Great2008/reads-web-app/internal/navigation"
	"github.com/Great2008/reads-web-app/internal/quiz"
	"github.com/Great2008/reads-web-app/internal/session"
)

// fakeBackend is a scriptable in-memory BackendGateway.
type fakeBackend struct {
	user      *domain.User
	balance   int64
	earned    int64
	submitErr error

	categories []domain.Category
	catsErr    error
	lessons    []domain.Lesson
	questions  []domain.Question
	questsErr  error

	completeCalls int
	submitCalls   int
	credential    gateway.Credential
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (gateway.Credential, *domain.User, error) {
	f.credential = "token"
	return "token", f.user, nil
}

func (f *fakeBackend) Signup(ctx context.Context, name, email, password string) (gateway.Credential, *domain.User, error) {
	return f.Login(ctx, email, password)
}

func (f *fakeBackend) Me(ctx context.Context) (*domain.User, error) {
	if f.credential == "" {
		return nil, gateway.ErrSessionExpired
	}
	return f.user, nil
}

func (f *fakeBackend) Balance(ctx context.Context) (int64, error) { return f.balance, nil }

func (f *fakeBackend) Categories(ctx context.Context) ([]domain.Category, error) {
	if f.catsErr != nil {
		return nil, f.catsErr
	}
	return f.categories, nil
}

func (f *fakeBackend) Lessons(ctx context.Context, categoryID string) ([]domain.Lesson, error) {
	return f.lessons, nil
}

func (f *fakeBackend) Questions(ctx context.Context, lessonID uuid.UUID) ([]domain.Question, error) {
	if f.questsErr != nil {
		return nil, f.questsErr
	}
	return f.questions, nil
}

func (f *fakeBackend) CompleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	f.completeCalls++
	return nil
}

func (f *fakeBackend) SubmitQuiz(ctx context.Context, lessonID uuid.UUID, score gateway.Score) (int64, error) {
	f.submitCalls++
	if f.submitErr != nil {
		return 0, f.submitErr
	}
	return f.earned, nil
}

func (f *fakeBackend) RewardSummary(ctx context.Context) (int64, error) { return f.earned, nil }
func (f *fakeBackend) SetCredential(cred gateway.Credential)            { f.credential = cred }
func (f *fakeBackend) ClearCredential()                                 { f.credential = "" }

func newFakeBackend() *fakeBackend {
	lessonID := uuid.New()
	return &fakeBackend{
		user:    &domain.User{ID: uuid.New(), Email: "ada@example.com", DisplayName: "Ada"},
		balance: 10,
		earned:  4,
		categories: []domain.Category{
			{ID: "math", Name: "Math", Count: 1},
		},
		lessons: []domain.Lesson{
			{ID: lessonID, Title: "Fractions", Subject: "Math", Category: "math"},
		},
		questions: []domain.Question{
			{ID: uuid.New(), Prompt: "q1", Options: []string{"a", "b"}, CorrectOption: 0},
			{ID: uuid.New(), Prompt: "q2", Options: []string{"a", "b"}, CorrectOption: 1},
		},
	}
}

func newTestApp(t *testing.T, backend *fakeBackend) *App {
	t.Helper()
	a := New(backend, session.NewMemoryCredentialStore(),
		quiz.ProportionalPolicy{TokensPerCorrect: 2}, slog.Default())
	t.Cleanup(a.Close)
	return a
}

func TestLoginLandsOnDashboardWithBalance(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	a := newTestApp(t, backend)
	ctx := context.Background()

	require.NoError(t, a.Initialize(ctx))
	assert.Equal(t, navigation.ViewAuth, a.Nav.State().View)

	require.NoError(t, a.Login(ctx, "ada@example.com", "password123"))

	// The wallet refresh runs before the dashboard mounts, so the rendered
	// balance is already the server's.
	assert.Equal(t, navigation.ViewDashboard, a.Nav.State().View)
	assert.Equal(t, int64(10), a.Wallet.Balance())
}

func TestQuizFlowCreditsServerGrant(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	a := newTestApp(t, backend)
	ctx := context.Background()
	require.NoError(t, a.Login(ctx, "ada@example.com", "password123"))

	lesson := backend.lessons[0]
	a.OpenLearn()
	a.OpenCategory(backend.categories[0])
	a.OpenLesson(lesson)

	require.NoError(t, a.StartQuiz(ctx, lesson))
	assert.Equal(t, navigation.SubViewQuiz, a.Nav.State().SubView)
	assert.Equal(t, 1, backend.completeCalls)

	done, _, err := a.AnswerQuiz(ctx, 0) // correct
	require.NoError(t, err)
	assert.False(t, done)

	done, result, err := a.AnswerQuiz(ctx, 0) // wrong, triggers submission
	require.NoError(t, err)
	assert.True(t, done)

	// Server granted 4 although the local policy would compute 2.
	assert.Equal(t, int64(4), result.TokensEarned)
	assert.Equal(t, int64(14), a.Wallet.Balance())
	assert.Equal(t, navigation.SubViewResult, a.Nav.State().SubView)

	payload, ok := a.Nav.State().Payload.(navigation.ResultPayload)
	require.True(t, ok)
	assert.Equal(t, result, payload.Result)

	a.DismissResult()
	assert.Equal(t, navigation.SubViewCategories, a.Nav.State().SubView)
	assert.Nil(t, a.Quiz())
}

func TestFailedSubmissionRetriesWithoutDoubleCredit(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.submitErr = gateway.ErrNetwork
	a := newTestApp(t, backend)
	ctx := context.Background()
	require.NoError(t, a.Login(ctx, "ada@example.com", "password123"))

	lesson := backend.lessons[0]
	require.NoError(t, a.StartQuiz(ctx, lesson))

	_, _, err := a.AnswerQuiz(ctx, 0)
	require.NoError(t, err)
	done, _, err := a.AnswerQuiz(ctx, 1)
	assert.True(t, done)
	require.Error(t, err)

	// Quiz stays live and on screen for the retry.
	assert.Equal(t, navigation.SubViewQuiz, a.Nav.State().SubView)
	assert.Equal(t, int64(10), a.Wallet.Balance())

	backend.submitErr = nil
	result, err := a.FinishQuiz(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.TokensEarned)
	assert.Equal(t, int64(14), a.Wallet.Balance())

	// A second finish returns the stored result and credits nothing more.
	again, err := a.FinishQuiz(ctx)
	require.NoError(t, err)
	assert.Equal(t, result, again)
	assert.Equal(t, int64(14), a.Wallet.Balance())
	assert.Equal(t, 2, backend.submitCalls)
}

func TestLeavingQuizDiscardsSession(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	a := newTestApp(t, backend)
	ctx := context.Background()
	require.NoError(t, a.Login(ctx, "ada@example.com", "password123"))

	require.NoError(t, a.StartQuiz(ctx, backend.lessons[0]))
	_, _, err := a.AnswerQuiz(ctx, 0)
	require.NoError(t, err)

	// Navigating away mid-quiz drops the session without submitting.
	a.Navigate(navigation.ViewWallet)

	assert.Nil(t, a.Quiz())
	assert.Equal(t, 0, backend.submitCalls)
	assert.Equal(t, int64(10), a.Wallet.Balance())

	_, _, err = a.AnswerQuiz(ctx, 0)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestStartQuizFailureStaysOnContent(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.questsErr = gateway.ErrServer
	a := newTestApp(t, backend)
	ctx := context.Background()
	require.NoError(t, a.Login(ctx, "ada@example.com", "password123"))

	lesson := backend.lessons[0]
	a.OpenLesson(lesson)

	err := a.StartQuiz(ctx, lesson)
	require.Error(t, err)
	assert.Equal(t, navigation.SubViewContent, a.Nav.State().SubView)
	assert.Nil(t, a.Quiz())
}

func TestSessionExpiryDuringReadForcesLogout(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	a := newTestApp(t, backend)
	ctx := context.Background()
	require.NoError(t, a.Login(ctx, "ada@example.com", "password123"))

	backend.catsErr = gateway.ErrSessionExpired
	cats := a.Categories(ctx)
	assert.Empty(t, cats)

	// The rejected credential tears the whole session down.
	assert.Equal(t, session.StateUnauthenticated, a.Sessions.Snapshot().State)
	assert.Equal(t, navigation.ViewAuth, a.Nav.State().View)
	assert.Equal(t, int64(0), a.Wallet.Balance())
}

func TestCategoriesDegradeToLastKnown(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	a := newTestApp(t, backend)
	ctx := context.Background()
	require.NoError(t, a.Login(ctx, "ada@example.com", "password123"))

	first := a.Categories(ctx)
	require.Len(t, first, 1)

	backend.catsErr = gateway.ErrNetwork
	second := a.Categories(ctx)
	assert.Equal(t, first, second)
}

func TestLogoutResetsEverything(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	a := newTestApp(t, backend)
	ctx := context.Background()
	require.NoError(t, a.Login(ctx, "ada@example.com", "password123"))
	require.NoError(t, a.StartQuiz(ctx, backend.lessons[0]))

	require.NoError(t, a.Logout())

	assert.Equal(t, session.StateUnauthenticated, a.Sessions.Snapshot().State)
	assert.Equal(t, navigation.ViewAuth, a.Nav.State().View)
	assert.Equal(t, int64(0), a.Wallet.Balance())
	assert.Nil(t, a.Quiz())
}
