package repository

import (
	"context"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// Collection defines the interface for owned-fruit persistence.
// One row per acquisition event; duplicates are rows, not counts.
type Collection interface {
	// GetOwnedFruits returns every acquisition row for the user.
	GetOwnedFruits(ctx context.Context, userID string) ([]domain.OwnedFruit, error)

	// InsertOwnedFruit records a new acquisition.
	InsertOwnedFruit(ctx context.Context, fruit *domain.OwnedFruit) error

	// GetOwnerIDs returns the distinct users owning at least one fruit.
	// Zero-power users are skipped by the income tick, consistent with the
	// zero-power-zero-income rule.
	GetOwnerIDs(ctx context.Context) ([]string, error)
}
