package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// rollback swallows pgx.ErrTxClosed so a deferred rollback after a successful
// commit is silent.
func rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
