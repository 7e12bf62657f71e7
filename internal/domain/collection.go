package domain

import (
	"time"

	"github.com/google/uuid"
)

// OwnedFruit is one acquisition event. Duplicates are multiple rows, never a
// count column; the aggregator derives counts. Rows are immutable once
// written and are only deleted when a raid transfers ownership.
type OwnedFruit struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    string    `json:"owner_id"`
	FruitID    string    `json:"fruit_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Holding is the aggregated view of one distinct fruit in a collection.
type Holding struct {
	FruitID        string `json:"fruit_id"`
	Count          int    `json:"count"`
	BasePower      int    `json:"base_power"`
	EffectivePower int    `json:"effective_power"`
}

// HoldingsSummary is the full aggregation result for one user.
// Holdings are sorted by effective power descending.
type HoldingsSummary struct {
	UserID     string    `json:"user_id"`
	TotalPower int       `json:"total_power"`
	Holdings   []Holding `json:"holdings"`
}
