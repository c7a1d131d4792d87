package domain

import (
	"errors"
	"testing"
)

func TestQuestionValidate(t *testing.T) {
	question := Question{
		Prompt:        "What is 2+2?",
		Options:       []string{"3", "4", "5"},
		CorrectOption: 1,
	}
	if err := question.Validate(); err != nil {
		t.Fatalf("Expected valid question, got %v", err)
	}

	empty := question
	empty.Prompt = "  "
	if err := empty.Validate(); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("Expected error %v, got %v", ErrEmptyPrompt, err)
	}

	few := question
	few.Options = []string{"only"}
	if err := few.Validate(); !errors.Is(err, ErrTooFewOptions) {
		t.Errorf("Expected error %v, got %v", ErrTooFewOptions, err)
	}

	out := question
	out.CorrectOption = 3
	if err := out.Validate(); !errors.Is(err, ErrCorrectOptionOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrCorrectOptionOutOfRange, err)
	}

	neg := question
	neg.CorrectOption = -1
	if err := neg.Validate(); !errors.Is(err, ErrCorrectOptionOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrCorrectOptionOutOfRange, err)
	}
}

func TestCategorySlug(t *testing.T) {
	if got := CategorySlug("  Science "); got != "science" {
		t.Errorf("Expected slug science, got %q", got)
	}
}
