package handler

import (
	"net/http"

	"github.com/osse101/GrandLineBot_Go/internal/gacha"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
)

// PullRequest is the body for the gacha pull endpoint
type PullRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// HandlePull charges the pull cost and awards a random fruit
func HandlePull(service gacha.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PullRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Pull"); err != nil {
			return
		}

		result, err := service.Pull(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, "pull fruit", err)
			return
		}

		logger.FromContext(r.Context()).Info("Fruit pulled",
			"userID", req.UserID,
			"fruit", result.Fruit.ID,
			"rarity", result.Fruit.Rarity,
			"copies", result.Copies)
		respondJSON(w, http.StatusOK, result)
	}
}
