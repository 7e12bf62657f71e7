package domain

import "time"

// Account is a user's berry ledger. The invariant
// Balance == TotalEarned - TotalSpent must hold after every mutation, and
// Balance never goes negative (debits fail closed).
// Accounts are created lazily on first reference and never destroyed.
type Account struct {
	UserID      string    `json:"user_id"`
	Balance     int64     `json:"balance"`
	TotalEarned int64     `json:"total_earned"`
	TotalSpent  int64     `json:"total_spent"`
	LastAccrual time.Time `json:"last_accrual"`
}

// AccrualResult reports the outcome of one income accrual.
type AccrualResult struct {
	Credited int64 `json:"credited"`
	Balance  int64 `json:"balance"`
}

// Ledger mutation reasons, recorded for logging and metrics.
const (
	ReasonAccrual    = "accrual"
	ReasonPull       = "pull"
	ReasonRaidLoot   = "raid_loot"
	ReasonRaidLoss   = "raid_loss"
	ReasonAdminGrant = "admin_grant"
)
