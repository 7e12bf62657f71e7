package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Collection error messages
	ErrMsgGetCollectionFailed  = "Failed to get collection"
	ErrMsgGetLeaderboardFailed = "Failed to get leaderboard"

	// Catalog error messages
	ErrMsgFruitNotFoundHTTP = "Fruit not found"

	// Economy error messages
	ErrMsgGetRateFailed    = "Failed to get income rate"
	ErrMsgGetBalanceFailed = "Failed to get balance"

	// Parameter validation error messages
	ErrMsgInvalidLimit  = "Invalid limit parameter"
	ErrMsgInvalidAmount = "amount must be positive"
	ErrMsgInvalidMode   = "Invalid raid mode. Valid options: full, quick"
)
