package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/store"
)

// seedCatalog populates a starter catalog when the lessons table is empty so
// a fresh server is immediately usable. An already-populated catalog is left
// untouched.
func seedCatalog(ctx context.Context, catalogStore store.CatalogStore, logger *slog.Logger) error {
	cats, err := catalogStore.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if len(cats) > 0 {
		logger.Debug("catalog already populated", "categories", len(cats))
		return nil
	}

	seeded := 0
	for _, entry := range starterCatalog() {
		if err := catalogStore.CreateLesson(ctx, &entry.lesson, entry.questions); err != nil {
			return fmt.Errorf("failed to seed lesson %q: %w", entry.lesson.Title, err)
		}
		seeded++
	}

	logger.Info("starter catalog seeded", "lessons", seeded)
	return nil
}

type seedEntry struct {
	lesson    domain.Lesson
	questions []domain.Question
}

func starterCatalog() []seedEntry {
	return []seedEntry{
		{
			lesson: domain.Lesson{
				ID:       uuid.New(),
				Title:    "Budgeting Basics",
				Subject:  "Personal Finance",
				Category: "Finance",
				Content:  "A budget is a plan for your money. Track what comes in, decide what goes out, and review it every month.",
			},
			questions: []domain.Question{
				{
					ID:            uuid.New(),
					Prompt:        "What is the first step of building a budget?",
					Options:       []string{"Tracking income and expenses", "Opening a credit card", "Buying stocks"},
					CorrectOption: 0,
				},
				{
					ID:            uuid.New(),
					Prompt:        "How often should a budget be reviewed?",
					Options:       []string{"Never", "Every month", "Once a decade"},
					CorrectOption: 1,
				},
			},
		},
		{
			lesson: domain.Lesson{
				ID:       uuid.New(),
				Title:    "What Is Compound Interest",
				Subject:  "Personal Finance",
				Category: "Finance",
				Content:  "Compound interest pays interest on interest. The earlier you save, the more time compounding has to work.",
			},
			questions: []domain.Question{
				{
					ID:            uuid.New(),
					Prompt:        "Compound interest is interest earned on",
					Options:       []string{"Only the principal", "Principal and accumulated interest", "Monthly fees"},
					CorrectOption: 1,
				},
				{
					ID:            uuid.New(),
					Prompt:        "When is it best to start saving?",
					Options:       []string{"As early as possible", "After retirement", "Only in a recession"},
					CorrectOption: 0,
				},
			},
		},
		{
			lesson: domain.Lesson{
				ID:       uuid.New(),
				Title:    "Reading a Nutrition Label",
				Subject:  "Everyday Health",
				Category: "Health",
				Content:  "Serving size anchors every number on the label. Compare the serving size to what you actually eat before judging the rest.",
			},
			questions: []domain.Question{
				{
					ID:            uuid.New(),
					Prompt:        "Which value anchors the rest of a nutrition label?",
					Options:       []string{"Serving size", "Brand name", "Barcode"},
					CorrectOption: 0,
				},
				{
					ID:            uuid.New(),
					Prompt:        "Ingredients are listed in order of",
					Options:       []string{"Alphabet", "Weight, heaviest first", "Price"},
					CorrectOption: 1,
				},
			},
		},
	}
}
