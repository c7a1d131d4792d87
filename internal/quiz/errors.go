package quiz

import "errors"

// Quiz engine errors.
var (
	// ErrNoQuestions is returned when an engine is constructed without
	// questions. A quiz with nothing to answer is never started.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrInvalidOption is returned when an answer's option index does not
	// point at one of the current question's options.
	ErrInvalidOption = errors.New("invalid option index")

	// ErrQuizCompleted is returned when Answer is called after the quiz
	// completed. This is a programming error in the caller and is rejected
	// loudly, never silently ignored.
	ErrQuizCompleted = errors.New("quiz already completed")

	// ErrNotFinished is returned when the reward result is requested before
	// the quiz completed.
	ErrNotFinished = errors.New("quiz not finished")

	// ErrQuestionsRemaining is returned when Finish is called while
	// unanswered questions remain.
	ErrQuestionsRemaining = errors.New("questions remaining")

	// ErrUnknownPolicy is returned when the configured reward policy name is
	// not recognized.
	ErrUnknownPolicy = errors.New("unknown reward policy")
)
