package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

const (
	sqlGetOwnedFruitsForUpdate = sqlGetOwnedFruits + `
		FOR UPDATE`

	// The transfer deletes the loser's row and re-inserts under the winner
	// with a fresh acquisition time, so the winner's duplicate bonus for
	// that fruit restarts from the transferred rows.
	sqlDeleteOwnedFruit = `
		DELETE FROM owned_fruits
		WHERE id = $1
		RETURNING fruit_id`
)

// RaidRepository implements repository.Raid for PostgreSQL
type RaidRepository struct {
	db *pgxpool.Pool
}

// NewRaidRepository creates a new RaidRepository
func NewRaidRepository(db *pgxpool.Pool) *RaidRepository {
	return &RaidRepository{db: db}
}

// BeginRaidTx starts the loot settlement transaction
func (r *RaidRepository) BeginRaidTx(ctx context.Context) (repository.RaidTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &RaidTx{tx: tx}, nil
}

// RaidTx implements repository.RaidTx. It shares the account row queries
// with AccountTx so berry movement and fruit transfer commit atomically.
type RaidTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *RaidTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *RaidTx) Rollback(ctx context.Context) error {
	return rollback(ctx, t.tx)
}

// GetAccountForUpdate locks the user's ledger row
func (t *RaidTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	if _, err := t.tx.Exec(ctx, sqlUpsertAccount, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertAccount, err)
	}
	return scanAccount(t.tx.QueryRow(ctx, sqlGetAccountForUpdate, userID))
}

// UpdateAccount writes the full ledger row back
func (t *RaidTx) UpdateAccount(ctx context.Context, account *domain.Account) error {
	tag, err := t.tx.Exec(ctx, sqlUpdateAccount,
		account.UserID, account.Balance, account.TotalEarned, account.TotalSpent, account.LastAccrual)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAccount, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// GetOwnedFruitsForUpdate locks the loser's acquisition rows for the steal
// rolls.
func (t *RaidTx) GetOwnedFruitsForUpdate(ctx context.Context, userID string) ([]domain.OwnedFruit, error) {
	rows, err := t.tx.Query(ctx, sqlGetOwnedFruitsForUpdate, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnedFruits, err)
	}
	return scanOwnedFruits(rows)
}

// TransferOwnedFruit moves one acquisition row to the new owner
func (t *RaidTx) TransferOwnedFruit(ctx context.Context, rowID uuid.UUID, newOwnerID string) error {
	var fruitID string
	if err := t.tx.QueryRow(ctx, sqlDeleteOwnedFruit, rowID).Scan(&fruitID); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrFruitNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToTransferFruit, err)
	}

	_, err := t.tx.Exec(ctx, sqlInsertOwnedFruit, uuid.New(), newOwnerID, fruitID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToTransferFruit, err)
	}
	return nil
}
