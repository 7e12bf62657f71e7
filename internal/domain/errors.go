package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Catalog errors
	ErrMsgFruitNotFound = "fruit not found"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must be positive"

	// Raid validation errors - each rejection has a distinct reason so the
	// presentation layer can tell players whether to wait, pick another
	// target, or retry
	ErrMsgSelfTarget      = "cannot raid yourself"
	ErrMsgRaidOnCooldown  = "raid on cooldown"
	ErrMsgTargetProtected = "target is under raid protection"
	ErrMsgTargetWorthless = "target has nothing worth taking"

	// Loot errors
	ErrMsgTransferFailed = "loot transfer failed"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Catalog errors
	ErrFruitNotFound = errors.New(ErrMsgFruitNotFound)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// Raid validation errors
	ErrSelfTarget      = errors.New(ErrMsgSelfTarget)
	ErrRaidOnCooldown  = errors.New(ErrMsgRaidOnCooldown)
	ErrTargetProtected = errors.New(ErrMsgTargetProtected)
	ErrTargetWorthless = errors.New(ErrMsgTargetWorthless)

	// Loot errors
	ErrTransferFailed = errors.New(ErrMsgTransferFailed)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
