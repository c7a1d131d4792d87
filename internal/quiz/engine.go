// Package quiz runs one quiz session against a fixed question set and
// computes the token reward. Sessions are never persisted: a new attempt is
// always a new Engine.
package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/gateway"
)

// Status is the engine's lifecycle state.
type Status int

const (
	// StatusInProgress means questions remain, or the final submission has
	// not succeeded yet.
	StatusInProgress Status = iota

	// StatusCompleted is terminal: no question may be re-answered; a new
	// attempt requires a new Engine.
	StatusCompleted
)

// RewardResult is the immutable outcome of a completed quiz. TokensEarned is
// the authoritative grant returned by the backend's submission call, not the
// locally computed estimate.
type RewardResult struct {
	CorrectCount   int
	TotalQuestions int
	TokensEarned   int64
}

// Submitter is the slice of the backend gateway the engine needs: the
// authoritative reward grant.
type Submitter interface {
	SubmitQuiz(ctx context.Context, lessonID uuid.UUID, score gateway.Score) (int64, error)
}

// Engine walks an ordered question sequence to completion. Answering the last
// question triggers the finish flow: the locally scored outcome is submitted
// to the backend and the returned earned amount becomes the result. A failed
// submission leaves the engine finishable again so the write can be retried.
type Engine struct {
	lessonID  uuid.UUID
	questions []domain.Question
	submitter Submitter
	policy    RewardPolicy
	logger    *slog.Logger

	mu      sync.Mutex
	index   int
	correct int
	status  Status
	result  RewardResult
}

// NewEngine creates an engine over the given question set.
func NewEngine(
	lessonID uuid.UUID,
	questions []domain.Question,
	submitter Submitter,
	policy RewardPolicy,
	logger *slog.Logger,
) (*Engine, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Engine{
		lessonID:  lessonID,
		questions: questions,
		submitter: submitter,
		policy:    policy,
		logger:    logger.With("component", "quiz_engine", "lesson_id", lessonID),
	}, nil
}

// LessonID returns the lesson this quiz belongs to.
func (e *Engine) LessonID() uuid.UUID { return e.lessonID }

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// CurrentIndex returns the index of the question awaiting an answer. Once all
// questions are answered it equals TotalQuestions.
func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// CorrectCount returns the number of correct answers so far.
func (e *Engine) CorrectCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.correct
}

// TotalQuestions returns the size of the question set.
func (e *Engine) TotalQuestions() int { return len(e.questions) }

// CurrentQuestion returns the question awaiting an answer, or nil when all
// questions are answered.
func (e *Engine) CurrentQuestion() *domain.Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index >= len(e.questions) {
		return nil
	}
	q := e.questions[e.index]
	return &q
}

// LocalEstimate returns the reward the configured policy would grant for the
// current correct count. Display only: the credited amount always comes from
// the backend's submission response.
func (e *Engine) LocalEstimate() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.policy.Tokens(e.correct, len(e.questions))
}

// Result returns the reward of a completed quiz, or ErrNotFinished.
func (e *Engine) Result() (RewardResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != StatusCompleted {
		return RewardResult{}, ErrNotFinished
	}
	return e.result, nil
}

// Answer records the answer for the current question. A match with the
// question's correct option increments the correct count. Answering the last
// question triggers Finish; its result (or submission error) is returned with
// done=true. Answering a completed quiz returns ErrQuizCompleted.
func (e *Engine) Answer(ctx context.Context, optionIndex int) (done bool, result RewardResult, err error) {
	e.mu.Lock()
	if e.status == StatusCompleted || e.index >= len(e.questions) {
		e.mu.Unlock()
		return false, RewardResult{}, ErrQuizCompleted
	}

	question := e.questions[e.index]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		e.mu.Unlock()
		return false, RewardResult{}, fmt.Errorf("option %d of %d: %w",
			optionIndex, len(question.Options), ErrInvalidOption)
	}

	if optionIndex == question.CorrectOption {
		e.correct++
	}
	e.index++
	last := e.index == len(e.questions)
	e.mu.Unlock()

	e.logger.Debug("answered question",
		"question_id", question.ID,
		"correct", optionIndex == question.CorrectOption)

	if !last {
		return false, RewardResult{}, nil
	}

	result, err = e.Finish(ctx)
	return true, result, err
}

// Finish submits the locally scored outcome for the authoritative grant and
// moves the engine to Completed. It is invoked by the final Answer; calling
// it directly retries a submission that failed. The transition to Completed
// happens only on success, so a write-path failure leaves the quiz retryable.
func (e *Engine) Finish(ctx context.Context) (RewardResult, error) {
	e.mu.Lock()
	if e.status == StatusCompleted {
		result := e.result
		e.mu.Unlock()
		return result, nil
	}
	if e.index < len(e.questions) {
		e.mu.Unlock()
		return RewardResult{}, ErrQuestionsRemaining
	}
	score := gateway.Score{Correct: e.correct, Total: len(e.questions)}
	e.mu.Unlock()

	earned, err := e.submitter.SubmitQuiz(ctx, e.lessonID, score)
	if err != nil {
		e.logger.Warn("quiz submission failed", "error", err)
		return RewardResult{}, fmt.Errorf("failed to submit quiz: %w", err)
	}

	e.mu.Lock()
	e.status = StatusCompleted
	e.result = RewardResult{
		CorrectCount:   score.Correct,
		TotalQuestions: score.Total,
		TokensEarned:   earned,
	}
	result := e.result
	e.mu.Unlock()

	e.logger.Info("quiz completed",
		"correct", result.CorrectCount,
		"total", result.TotalQuestions,
		"earned", result.TokensEarned,
		"local_estimate", e.policy.Tokens(result.CorrectCount, result.TotalQuestions))

	return result, nil
}
