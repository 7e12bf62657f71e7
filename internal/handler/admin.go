package handler

import (
	"net/http"

	"github.com/osse101/GrandLineBot_Go/internal/cooldown"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/economy"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
)

// Admin grant bounds. Grants above the cap are almost certainly typos.
const maxAdminGrant = 1_000_000

// GrantRequest is the body for the admin berry grant endpoint
type GrantRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

// GrantResponse reports the credited amount and resulting balance
type GrantResponse struct {
	UserID     string `json:"user_id"`
	Credited   int64  `json:"credited"`
	NewBalance int64  `json:"new_balance"`
}

// HandleAdminGrant credits berries to a user's ledger
func HandleAdminGrant(service economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GrantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin grant"); err != nil {
			return
		}
		if req.Amount > maxAdminGrant {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidAmount)
			return
		}

		balance, err := service.Credit(r.Context(), req.UserID, req.Amount, domain.ReasonAdminGrant)
		if err != nil {
			respondServiceError(w, r, "grant berries", err)
			return
		}

		logger.FromContext(r.Context()).Info("Admin grant",
			"userID", req.UserID,
			"amount", req.Amount,
			"balance", balance)
		respondJSON(w, http.StatusOK, GrantResponse{
			UserID:     req.UserID,
			Credited:   req.Amount,
			NewBalance: balance,
		})
	}
}

// ResetCooldownRequest is the body for the admin cooldown reset endpoint
type ResetCooldownRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Action string `json:"action" validate:"required,max=50"`
}

// HandleAdminResetCooldown clears one user action cooldown or window
func HandleAdminResetCooldown(service cooldown.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetCooldownRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin reset cooldown"); err != nil {
			return
		}

		if err := service.ResetCooldown(r.Context(), req.UserID, req.Action); err != nil {
			respondServiceError(w, r, "reset cooldown", err)
			return
		}

		logger.FromContext(r.Context()).Info("Cooldown reset",
			"userID", req.UserID,
			"action", req.Action)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Cooldown reset"})
	}
}
