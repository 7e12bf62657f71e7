package handler

import (
	"net/http"

	"github.com/osse101/GrandLineBot_Go/internal/economy"
)

// RateResponse reports a user's passive income rate
type RateResponse struct {
	UserID     string `json:"user_id"`
	TotalPower int    `json:"total_power"`
	HourlyRate int    `json:"hourly_rate"`
}

// HandleGetRate returns the user's current berry income per hour
func HandleGetRate(service economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		power, err := service.TotalPower(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get income rate", err)
			return
		}
		rate, err := service.HourlyRate(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get income rate", err)
			return
		}

		respondJSON(w, http.StatusOK, RateResponse{
			UserID:     userID,
			TotalPower: power,
			HourlyRate: rate,
		})
	}
}

// HandleGetBalance returns the user's berry ledger
func HandleGetBalance(service economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		account, err := service.GetAccount(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get balance", err)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}
