package api

import (
	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
)

// Request and response structures shared across handlers. Field names form
// the wire contract consumed by the client gateway.

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// AccessToken is the JWT token used for API authorization.
	AccessToken string `json:"access_token"`

	// User is the resolved identity of the authenticated user.
	User domain.User `json:"user"`
}

// BalanceResponse carries the wallet's current token balance.
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// SubmitQuizRequest defines the payload for the quiz submission endpoint.
type SubmitQuizRequest struct {
	LessonID     uuid.UUID `json:"lesson_id"       validate:"required"`
	CorrectCount int       `json:"correct_count"   validate:"min=0"`
	TotalCount   int       `json:"total_questions" validate:"required,min=1"`
}

// SubmitQuizResponse carries the graded score and the tokens awarded by the
// server's reward policy. Earned is authoritative for the client's wallet.
type SubmitQuizResponse struct {
	Score  int   `json:"score"`
	Earned int64 `json:"earned"`
}

// RewardSummaryResponse carries the lifetime token total for a user.
type RewardSummaryResponse struct {
	TotalEarned int64 `json:"total_earned"`
}
