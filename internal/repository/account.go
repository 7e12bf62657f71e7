package repository

import (
	"context"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// Account defines the interface for berry ledger persistence
type Account interface {
	// GetAccount returns the user's account, creating an empty one on first
	// reference (upsert-on-read).
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)

	BeginTx(ctx context.Context) (AccountTx, error)
}

// AccountTx extends Tx with ledger operations. GetAccountForUpdate takes a
// row lock so concurrent accruals and debits for the same user serialize.
type AccountTx interface {
	Tx

	GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) error
}
