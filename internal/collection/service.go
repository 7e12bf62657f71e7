package collection

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/GrandLineBot_Go/internal/catalog"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

// Power cache sizing
const (
	PowerCacheSize = 2048
	PowerCacheTTL  = 5 * time.Minute
)

// Service defines the interface for collection aggregation
type Service interface {
	// ComputeHoldings aggregates a user's owned fruits into holdings sorted
	// by effective power descending.
	ComputeHoldings(ctx context.Context, userID string) (*domain.HoldingsSummary, error)

	// TotalPower returns the user's aggregate combat power, cached.
	TotalPower(ctx context.Context, userID string) (int, error)

	// TopCollectors returns the n strongest collections.
	TopCollectors(ctx context.Context, n int) ([]domain.HoldingsSummary, error)

	// InvalidatePower drops the cached power after a pull or raid transfer.
	InvalidatePower(userID string)
}

type service struct {
	repo         repository.Collection
	catalog      catalog.Service
	dupBonusRate float64
	cache        *powerCache
}

// NewService creates a new collection service
func NewService(repo repository.Collection, catalogSvc catalog.Service, dupBonusRate float64) Service {
	return &service{
		repo:         repo,
		catalog:      catalogSvc,
		dupBonusRate: dupBonusRate,
		cache:        newPowerCache(PowerCacheSize, PowerCacheTTL),
	}
}

func (s *service) ComputeHoldings(ctx context.Context, userID string) (*domain.HoldingsSummary, error) {
	rows, err := s.repo.GetOwnedFruits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned fruits: %w", err)
	}

	summary := Aggregate(rows, s.lookup(ctx), s.dupBonusRate)
	summary.UserID = userID
	s.cache.Set(userID, summary.TotalPower)

	return &summary, nil
}

func (s *service) TotalPower(ctx context.Context, userID string) (int, error) {
	if power, ok := s.cache.Get(userID); ok {
		return power, nil
	}

	summary, err := s.ComputeHoldings(ctx, userID)
	if err != nil {
		return 0, err
	}
	return summary.TotalPower, nil
}

func (s *service) TopCollectors(ctx context.Context, n int) ([]domain.HoldingsSummary, error) {
	log := logger.FromContext(ctx)

	ownerIDs, err := s.repo.GetOwnerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	summaries := make([]domain.HoldingsSummary, 0, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		summary, err := s.ComputeHoldings(ctx, ownerID)
		if err != nil {
			// A single broken collection must not hide the leaderboard.
			log.Error("Failed to aggregate collection", "userID", ownerID, "error", err)
			continue
		}
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalPower != summaries[j].TotalPower {
			return summaries[i].TotalPower > summaries[j].TotalPower
		}
		return summaries[i].UserID < summaries[j].UserID
	})

	if n > 0 && len(summaries) > n {
		summaries = summaries[:n]
	}
	return summaries, nil
}

func (s *service) InvalidatePower(userID string) {
	s.cache.Invalidate(userID)
}

// lookup adapts the catalog to the aggregator's fail-soft contract.
func (s *service) lookup(ctx context.Context) FruitLookup {
	log := logger.FromContext(ctx)
	return func(fruitID string) *domain.Fruit {
		fruit, err := s.catalog.GetFruit(fruitID)
		if err != nil {
			log.Warn("Owned fruit missing from catalog, scoring at lowest tier", "fruitID", fruitID)
			return nil
		}
		return fruit
	}
}
