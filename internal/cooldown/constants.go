package cooldown

import "time"

// DefaultCooldownDuration is the fallback when an action has no configured window.
const DefaultCooldownDuration = 5 * time.Minute

const (
	// HashSeparator joins userID and action before hashing for the advisory lock key.
	HashSeparator = ":"

	// HashMaskPositiveInt64 keeps advisory lock keys in positive int64 range.
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

const (
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	SQLSelectLastUsed = `
		SELECT last_used
		FROM user_cooldowns
		WHERE user_id = $1 AND action = $2
	`

	SQLDeleteCooldown = `DELETE FROM user_cooldowns WHERE user_id = $1 AND action = $2`

	SQLUpsertCooldown = `
		INSERT INTO user_cooldowns (user_id, action, last_used)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, action) DO UPDATE
		SET last_used = EXCLUDED.last_used
	`
)

// Wrap formats for the pgx-facing failures.
const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgGetCooldownTxFailed     = "failed to get cooldown within transaction: %w"
	ErrMsgUpdateCooldownFailed    = "failed to update cooldown: %w"
	ErrMsgCommitTransactionFailed = "failed to commit cooldown transaction: %w"
	ErrMsgResetCooldownFailed     = "failed to reset cooldown: %w"
	ErrMsgGetLastUsedFailed       = "failed to get last used: %w"
)

const (
	LogMsgDevModeBypass         = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgRaceConditionDetected = "Race condition detected - concurrent request on cooldown"
	LogMsgCooldownEnforced      = "Cooldown enforced successfully"
)

// User-facing remaining-time formats rendered by ErrOnCooldown.Error().
const (
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)

const SecondsPerMinute = 60
