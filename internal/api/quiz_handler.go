package api

import (
	"errors"
	"net/http"

	"github.com/Great2008/reads-web-app/internal/api/shared"
	"github.com/Great2008/reads-web-app/internal/service"
	"github.com/Great2008/reads-web-app/internal/store"
)

// QuizHandler handles quiz submission.
type QuizHandler struct {
	rewardService *service.RewardService
}

// NewQuizHandler creates a new QuizHandler with the given dependencies.
func NewQuizHandler(rewardService *service.RewardService) *QuizHandler {
	return &QuizHandler{rewardService: rewardService}
}

// Submit handles the /quiz/submit endpoint. The response's earned amount is
// what the server's reward policy granted and is authoritative for clients.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req SubmitQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, earned, err := h.rewardService.SubmitQuiz(
		r.Context(), userID, req.LessonID, req.CorrectCount, req.TotalCount)
	if err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid quiz submission")
			return
		}
		HandleAPIError(w, r, err, "Failed to submit quiz")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SubmitQuizResponse{
		Score:  result.Score,
		Earned: earned,
	})
}
