package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Great2008/reads-web-app/internal/api/shared"
	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/store"
)

// LearnHandler serves the lesson catalog: categories, lesson lists, lesson
// content and the quiz questions belonging to a lesson.
type LearnHandler struct {
	catalogStore  store.CatalogStore
	progressStore store.ProgressStore
}

// NewLearnHandler creates a new LearnHandler with the given dependencies.
func NewLearnHandler(catalogStore store.CatalogStore, progressStore store.ProgressStore) *LearnHandler {
	return &LearnHandler{
		catalogStore:  catalogStore,
		progressStore: progressStore,
	}
}

// Categories handles the /lessons/categories endpoint.
func (h *LearnHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	cats, err := h.catalogStore.Categories(r.Context())
	if err != nil {
		slog.Error("failed to load categories", "error", err)
		HandleAPIError(w, r, err, "Failed to load categories")
		return
	}
	if cats == nil {
		cats = []domain.Category{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cats)
}

// Lessons handles the /lessons/category/{categoryID} endpoint.
func (h *LearnHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	categoryID := chi.URLParam(r, "categoryID")
	if categoryID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Category ID is required")
		return
	}

	lessons, err := h.catalogStore.LessonsByCategory(r.Context(), categoryID)
	if err != nil {
		slog.Error("failed to load lessons", "error", err, "category_id", categoryID)
		HandleAPIError(w, r, err, "Failed to load lessons")
		return
	}
	if lessons == nil {
		lessons = []domain.Lesson{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lessons)
}

// Lesson handles the /lessons/{lessonID} endpoint and returns the full
// lesson including its content.
func (h *LearnHandler) Lesson(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	lessonID, err := getPathUUID(r, "lessonID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	lesson, err := h.catalogStore.GetLesson(r.Context(), lessonID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}

// Questions handles the /quiz/start/{lessonID} endpoint.
func (h *LearnHandler) Questions(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	lessonID, err := getPathUUID(r, "lessonID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	questions, err := h.catalogStore.QuestionsByLesson(r.Context(), lessonID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questions)
}

// CompleteLesson handles the /lesson/{lessonID}/complete endpoint. Marking is
// idempotent; repeating the call leaves the progress row completed.
func (h *LearnHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	lessonID, err := getPathUUID(r, "lessonID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.catalogStore.GetLesson(r.Context(), lessonID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.progressStore.MarkLessonComplete(r.Context(), userID, lessonID); err != nil {
		slog.Error("failed to mark lesson complete",
			"error", err,
			"user_id", userID,
			"lesson_id", lessonID)
		HandleAPIError(w, r, err, "Failed to record progress")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
