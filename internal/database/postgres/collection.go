package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// Owned-fruit queries. One row per acquisition event; duplicate ownership is
// duplicate rows, never a count column.
const (
	sqlGetOwnedFruits = `
		SELECT id, owner_id, fruit_id, acquired_at
		FROM owned_fruits
		WHERE owner_id = $1
		ORDER BY acquired_at, id`

	sqlInsertOwnedFruit = `
		INSERT INTO owned_fruits (id, owner_id, fruit_id, acquired_at)
		VALUES ($1, $2, $3, $4)`

	sqlGetOwnerIDs = `
		SELECT DISTINCT owner_id
		FROM owned_fruits
		ORDER BY owner_id`
)

// CollectionRepository implements repository.Collection for PostgreSQL
type CollectionRepository struct {
	db *pgxpool.Pool
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// GetOwnedFruits returns every acquisition row for the user
func (r *CollectionRepository) GetOwnedFruits(ctx context.Context, userID string) ([]domain.OwnedFruit, error) {
	rows, err := r.db.Query(ctx, sqlGetOwnedFruits, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnedFruits, err)
	}
	return scanOwnedFruits(rows)
}

// InsertOwnedFruit records a new acquisition
func (r *CollectionRepository) InsertOwnedFruit(ctx context.Context, fruit *domain.OwnedFruit) error {
	_, err := r.db.Exec(ctx, sqlInsertOwnedFruit, fruit.ID, fruit.OwnerID, fruit.FruitID, fruit.AcquiredAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertOwnedFruit, err)
	}
	return nil
}

// GetOwnerIDs returns the distinct users owning at least one fruit
func (r *CollectionRepository) GetOwnerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, sqlGetOwnerIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnerIDs, err)
	}
	defer rows.Close()

	var ownerIDs []string
	for rows.Next() {
		var ownerID string
		if err := rows.Scan(&ownerID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnerIDs, err)
		}
		ownerIDs = append(ownerIDs, ownerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnerIDs, err)
	}
	return ownerIDs, nil
}

func scanOwnedFruits(rows pgx.Rows) ([]domain.OwnedFruit, error) {
	defer rows.Close()

	var fruits []domain.OwnedFruit
	for rows.Next() {
		var fruit domain.OwnedFruit
		if err := rows.Scan(&fruit.ID, &fruit.OwnerID, &fruit.FruitID, &fruit.AcquiredAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanOwnedFruit, err)
		}
		fruits = append(fruits, fruit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanOwnedFruit, err)
	}
	return fruits, nil
}
