package api

import (
	"log/slog"
	"net/http"

	"github.com/Great2008/reads-web-app/internal/api/shared"
	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/store"
)

// UserHandler serves the authenticated user's profile and activity stats.
type UserHandler struct {
	userStore     store.UserStore
	progressStore store.ProgressStore
	rewardStore   store.RewardStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	progressStore store.ProgressStore,
	rewardStore store.RewardStore,
) *UserHandler {
	return &UserHandler{
		userStore:     userStore,
		progressStore: progressStore,
		rewardStore:   rewardStore,
	}
}

// Profile handles the /user/profile endpoint.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Stats handles the /user/stats endpoint.
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	completed, err := h.progressStore.CompletedLessonCount(r.Context(), userID)
	if err != nil {
		slog.Error("failed to count completed lessons", "error", err, "user_id", userID)
		HandleAPIError(w, r, err, "Failed to load stats")
		return
	}

	quizzes, err := h.rewardStore.QuizCount(r.Context(), userID)
	if err != nil {
		slog.Error("failed to count quizzes", "error", err, "user_id", userID)
		HandleAPIError(w, r, err, "Failed to load stats")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, domain.UserStats{
		LessonsCompleted: completed,
		QuizzesTaken:     quizzes,
	})
}
