package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToUpsertAccount = "failed to upsert account"
	ErrMsgFailedToGetAccount    = "failed to get account"
	ErrMsgFailedToUpdateAccount = "failed to update account"
)

// Error Messages - Owned Fruit Operations
const (
	ErrMsgFailedToGetOwnedFruits   = "failed to get owned fruits"
	ErrMsgFailedToScanOwnedFruit   = "failed to scan owned fruit"
	ErrMsgFailedToInsertOwnedFruit = "failed to insert owned fruit"
	ErrMsgFailedToGetOwnerIDs      = "failed to get owner ids"
	ErrMsgFailedToTransferFruit    = "failed to transfer owned fruit"
)
