package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

// Account table queries. Accounts are created lazily on first read and the
// ledger columns only ever grow; balance is maintained alongside them so the
// Balance == TotalEarned - TotalSpent invariant survives crashes.
const (
	sqlUpsertAccount = `
		INSERT INTO accounts (user_id, balance, total_earned, total_spent, last_accrual)
		VALUES ($1, 0, 0, 0, to_timestamp(0))
		ON CONFLICT (user_id) DO NOTHING`

	sqlGetAccount = `
		SELECT user_id, balance, total_earned, total_spent, last_accrual
		FROM accounts
		WHERE user_id = $1`

	sqlGetAccountForUpdate = sqlGetAccount + `
		FOR UPDATE`

	sqlUpdateAccount = `
		UPDATE accounts
		SET balance = $2, total_earned = $3, total_spent = $4, last_accrual = $5
		WHERE user_id = $1`
)

// AccountRepository implements repository.Account for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccount returns the user's ledger, inserting an empty row on first
// reference.
func (r *AccountRepository) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	if _, err := r.db.Exec(ctx, sqlUpsertAccount, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertAccount, err)
	}
	return scanAccount(r.db.QueryRow(ctx, sqlGetAccount, userID))
}

// BeginTx starts a new ledger transaction
func (r *AccountRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &AccountTx{tx: tx}, nil
}

// AccountTx implements repository.AccountTx
type AccountTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *AccountTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *AccountTx) Rollback(ctx context.Context) error {
	return rollback(ctx, t.tx)
}

// GetAccountForUpdate locks the user's row so concurrent accruals, debits and
// raids against the same ledger serialize.
func (t *AccountTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	if _, err := t.tx.Exec(ctx, sqlUpsertAccount, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertAccount, err)
	}
	return scanAccount(t.tx.QueryRow(ctx, sqlGetAccountForUpdate, userID))
}

// UpdateAccount writes the full ledger row back
func (t *AccountTx) UpdateAccount(ctx context.Context, account *domain.Account) error {
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

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.UserID, &account.Balance, &account.TotalEarned, &account.TotalSpent, &account.LastAccrual)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return &account, nil
}
