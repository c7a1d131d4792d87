package api

import (
	"log/slog"
	"net/http"

	"github.com/Great2008/reads-web-app/internal/api/shared"
	"github.com/Great2008/reads-web-app/internal/store"
)

// WalletHandler serves wallet balance and reward summary queries.
type WalletHandler struct {
	walletStore store.WalletStore
	rewardStore store.RewardStore
}

// NewWalletHandler creates a new WalletHandler with the given dependencies.
func NewWalletHandler(walletStore store.WalletStore, rewardStore store.RewardStore) *WalletHandler {
	return &WalletHandler{
		walletStore: walletStore,
		rewardStore: rewardStore,
	}
}

// Balance handles the /wallet/balance endpoint.
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	balance, err := h.walletStore.GetBalance(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BalanceResponse{Balance: balance})
}

// RewardSummary handles the /rewards/summary endpoint.
func (h *WalletHandler) RewardSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	total, err := h.rewardStore.TotalEarned(r.Context(), userID)
	if err != nil {
		slog.Error("failed to sum rewards", "error", err, "user_id", userID)
		HandleAPIError(w, r, err, "Failed to load reward summary")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RewardSummaryResponse{TotalEarned: total})
}
