package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// Raid defines the interface for raid loot persistence
type Raid interface {
	BeginRaidTx(ctx context.Context) (RaidTx, error)
}

// RaidTx covers the whole loot transfer: berry movement between both ledgers
// and fruit ownership transfer, committed atomically or not at all.
type RaidTx interface {
	Tx

	GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) error

	// GetOwnedFruitsForUpdate locks the loser's rows for the steal rolls.
	GetOwnedFruitsForUpdate(ctx context.Context, userID string) ([]domain.OwnedFruit, error)

	// TransferOwnedFruit deletes the row and re-inserts it under the new
	// owner. The new owner's duplicate count for that fruit restarts at the
	// transferred rows - this is deliberate game design, not a bug.
	TransferOwnedFruit(ctx context.Context, rowID uuid.UUID, newOwnerID string) error
}
