package domain

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgress marks a lesson as completed by a user.
type LessonProgress struct {
	UserID      uuid.UUID `json:"user_id"`
	LessonID    uuid.UUID `json:"lesson_id"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completed_at"`
}

// QuizResult records one graded quiz attempt. Score is the 0-100 percentage.
type QuizResult struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	LessonID     uuid.UUID `json:"lesson_id"`
	Score        int       `json:"score"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Reward records a token grant for a completed quiz.
type Reward struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	LessonID     uuid.UUID `json:"lesson_id"`
	TokensEarned int64     `json:"tokens_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStats is the dashboard summary of a user's activity.
type UserStats struct {
	LessonsCompleted int `json:"lessons_completed"`
	QuizzesTaken     int `json:"quizzes_taken"`
}
