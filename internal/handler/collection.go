package handler

import (
	"net/http"

	"github.com/osse101/GrandLineBot_Go/internal/collection"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// HandleGetCollection returns a user's aggregated holdings and total power
func HandleGetCollection(service collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		summary, err := service.ComputeHoldings(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get collection", err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// LeaderboardResponse wraps the strongest collections
type LeaderboardResponse struct {
	Collectors []LeaderboardEntry `json:"collectors"`
}

// LeaderboardEntry is one leaderboard row
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"user_id"`
	TotalPower int    `json:"total_power"`
	Fruits     int    `json:"fruits"`
}

// HandleGetLeaderboard returns the top collections by total power
func HandleGetLeaderboard(service collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, defaultLeaderboardLimit, maxLeaderboardLimit)
		if !ok {
			return
		}

		summaries, err := service.TopCollectors(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "get leaderboard", err)
			return
		}

		response := LeaderboardResponse{Collectors: make([]LeaderboardEntry, 0, len(summaries))}
		for i, summary := range summaries {
			distinct := len(summary.Holdings)
			response.Collectors = append(response.Collectors, LeaderboardEntry{
				Rank:       i + 1,
				UserID:     summary.UserID,
				TotalPower: summary.TotalPower,
				Fruits:     distinct,
			})
		}

		respondJSON(w, http.StatusOK, response)
	}
}
