package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/GrandLineBot_Go/internal/cooldown"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Failed to "+opName, "error", err)
	status, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, status, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgFruitNotFoundError   = "Devil Fruit not found"
	ErrMsgNotEnoughBerriesErr  = "Not enough berries"
	ErrMsgInvalidAmountError   = "Amount must be positive"
	ErrMsgSelfTargetError      = "You cannot raid yourself"
	ErrMsgRaidOnCooldownError  = "Your crew is still recovering. Try again later"
	ErrMsgTargetProtectedError = "That pirate is under protection right now"
	ErrMsgTargetWorthlessError = "That pirate has nothing worth taking"
	ErrMsgTransferFailedError  = "Raid loot transfer failed. Nothing was taken"
	ErrMsgOnCooldownError      = "Action is on cooldown. Try again later"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrFruitNotFound):
		return http.StatusBadRequest, ErrMsgFruitNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughBerriesErr
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrSelfTarget):
		return http.StatusBadRequest, ErrMsgSelfTargetError
	case errors.Is(err, domain.ErrRaidOnCooldown):
		return http.StatusTooManyRequests, ErrMsgRaidOnCooldownError
	case errors.Is(err, domain.ErrTargetProtected):
		return http.StatusConflict, ErrMsgTargetProtectedError
	case errors.Is(err, domain.ErrTargetWorthless):
		return http.StatusBadRequest, ErrMsgTargetWorthlessError
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusInternalServerError, ErrMsgTransferFailedError
	case errors.Is(err, domain.ErrOnCooldown), errors.Is(err, cooldown.ErrOnCooldown{}):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// Surface short mock/test messages as-is; hide anything that looks like
	// an internal error dump.
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
