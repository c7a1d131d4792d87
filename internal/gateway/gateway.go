// Package gateway defines the request/response contract with the $READS
// backend and its HTTP implementation. The rest of the application only ever
// talks to the backend through the BackendGateway interface.
package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
)

// Credential is the opaque bearer token proving an authenticated session.
// It is persisted client-side and replayed on every authenticated call.
type Credential string

// Score is the locally computed outcome of a quiz, submitted for the
// authoritative reward grant.
type Score struct {
	Correct int `json:"correct_count"`
	Total   int `json:"total_questions"`
}

// Percent returns the score as a 0-100 percentage. A zero-question score is 0.
func (s Score) Percent() int {
	if s.Total <= 0 {
		return 0
	}
	return s.Correct * 100 / s.Total
}

// BackendGateway is the client-side contract with the backend: authentication,
// lesson catalog, quiz submission and balance persistence.
type BackendGateway interface {
	// Login exchanges credentials for a bearer credential and the resolved
	// identity. Returns ErrInvalidCredentials on rejection.
	Login(ctx context.Context, email, password string) (Credential, *domain.User, error)

	// Signup registers a new account and logs it in. Returns ErrEmailExists
	// or ErrValidation on rejection.
	Signup(ctx context.Context, name, email, password string) (Credential, *domain.User, error)

	// Me resolves the identity behind the current bearer credential. Returns
	// ErrSessionExpired when the credential is rejected.
	Me(ctx context.Context) (*domain.User, error)

	// Balance fetches the current token balance.
	Balance(ctx context.Context) (int64, error)

	// Categories lists the lesson categories.
	Categories(ctx context.Context) ([]domain.Category, error)

	// Lessons lists the lessons in a category.
	Lessons(ctx context.Context, categoryID string) ([]domain.Lesson, error)

	// Questions fetches the quiz question set for a lesson.
	Questions(ctx context.Context, lessonID uuid.UUID) ([]domain.Question, error)

	// CompleteLesson records a fire-and-forget completion marker.
	CompleteLesson(ctx context.Context, lessonID uuid.UUID) error

	// SubmitQuiz submits a locally computed score and returns the earned
	// token amount. The returned value is authoritative: it is what actually
	// gets credited, regardless of any local reward computation.
	SubmitQuiz(ctx context.Context, lessonID uuid.UUID, score Score) (int64, error)

	// RewardSummary returns the lifetime total of earned tokens.
	RewardSummary(ctx context.Context) (int64, error)

	// SetCredential installs the bearer credential used on authenticated
	// calls. ClearCredential removes it.
	SetCredential(cred Credential)
	ClearCredential()
}
