package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/GrandLineBot_Go/internal/combat"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
)

// RaidRequest is the body for the raid endpoint. Mode defaults to full.
type RaidRequest struct {
	AttackerID string `json:"attacker_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	DefenderID string `json:"defender_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Mode       string `json:"mode" validate:"raidmode"`
}

// HandleRaid resolves a raid between two users
func HandleRaid(service combat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RaidRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Raid"); err != nil {
			return
		}

		mode := domain.RaidModeFull
		if strings.EqualFold(req.Mode, string(domain.RaidModeQuick)) {
			mode = domain.RaidModeQuick
		}

		result, err := service.ResolveRaid(r.Context(), req.AttackerID, req.DefenderID, mode)
		if err != nil {
			respondServiceError(w, r, "resolve raid", err)
			return
		}

		logger.FromContext(r.Context()).Info("Raid handled",
			"attacker", req.AttackerID,
			"defender", req.DefenderID,
			"mode", mode,
			"victory", result.Victory)
		respondJSON(w, http.StatusOK, result)
	}
}
