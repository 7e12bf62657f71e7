package gacha

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GrandLineBot_Go/internal/catalog"
	"github.com/osse101/GrandLineBot_Go/internal/collection"
	"github.com/osse101/GrandLineBot_Go/internal/config"
	"github.com/osse101/GrandLineBot_Go/internal/cooldown"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/economy"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
	"github.com/osse101/GrandLineBot_Go/internal/metrics"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
	"github.com/osse101/GrandLineBot_Go/internal/utils"
)

// PullResult reports the outcome of one fruit pull.
type PullResult struct {
	Fruit      domain.Fruit `json:"fruit"`
	Copies     int          `json:"copies"` // total copies owned after this pull
	NewBalance int64        `json:"new_balance"`
}

// Service defines the interface for gacha pulls
type Service interface {
	// Pull charges the pull cost, rolls a rarity by weight, picks a fruit of
	// that rarity uniformly and records the acquisition. Duplicate pulls are
	// allowed; they stack into the duplicate bonus.
	Pull(ctx context.Context, userID string) (*PullResult, error)
}

type service struct {
	repo        repository.Collection
	catalog     catalog.Service
	collection  collection.Service
	economy     economy.Service
	cooldown    cooldown.Service
	cfg         config.GachaConfig
	rnd         func() float64 // For rolling RNG
}

// NewService creates a new gacha service
func NewService(repo repository.Collection, catalogSvc catalog.Service, collectionSvc collection.Service, economySvc economy.Service, cooldownSvc cooldown.Service, cfg config.GachaConfig) Service {
	return &service{
		repo:       repo,
		catalog:    catalogSvc,
		collection: collectionSvc,
		economy:    economySvc,
		cooldown:   cooldownSvc,
		cfg:        cfg,
		rnd:        utils.RandomFloat,
	}
}

func (s *service) Pull(ctx context.Context, userID string) (*PullResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Pull called", "userID", userID)

	var result *PullResult
	err := s.cooldown.EnforceCooldown(ctx, userID, domain.ActionPull, func() error {
		var err error
		result, err = s.executePull(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.PullsTotal.WithLabelValues(string(result.Fruit.Rarity)).Inc()
	log.Info("Fruit pulled", "userID", userID, "fruit", result.Fruit.ID, "rarity", result.Fruit.Rarity, "copies", result.Copies)
	return result, nil
}

func (s *service) executePull(ctx context.Context, userID string) (*PullResult, error) {
	log := logger.FromContext(ctx)

	newBalance, err := s.economy.Debit(ctx, userID, s.cfg.PullCost, domain.ReasonPull)
	if err != nil {
		return nil, err
	}

	fruit, err := s.rollFruit()
	if err != nil {
		// Cost was taken but nothing can be granted; give it back.
		if _, refundErr := s.economy.Credit(ctx, userID, s.cfg.PullCost, domain.ReasonPull); refundErr != nil {
			log.Error("Failed to refund pull cost", "userID", userID, "error", refundErr)
		}
		return nil, err
	}

	owned := &domain.OwnedFruit{
		ID:         uuid.New(),
		OwnerID:    userID,
		FruitID:    fruit.ID,
		AcquiredAt: time.Now(),
	}
	if err := s.repo.InsertOwnedFruit(ctx, owned); err != nil {
		if _, refundErr := s.economy.Credit(ctx, userID, s.cfg.PullCost, domain.ReasonPull); refundErr != nil {
			log.Error("Failed to refund pull cost", "userID", userID, "error", refundErr)
		}
		return nil, fmt.Errorf("failed to record pulled fruit: %w", err)
	}

	s.collection.InvalidatePower(userID)

	copies, err := s.countCopies(ctx, userID, fruit.ID)
	if err != nil {
		// The pull itself succeeded; the copy count is display-only.
		log.Warn("Failed to count copies after pull", "userID", userID, "error", err)
		copies = 1
	}

	return &PullResult{Fruit: *fruit, Copies: copies, NewBalance: newBalance}, nil
}

// rollFruit rolls a rarity by configured weight, then picks uniformly among
// that rarity's fruits. Weights for rarities with no fruits in the catalog
// are skipped so a roll can always land.
func (s *service) rollFruit() (*domain.Fruit, error) {
	var buckets []rarityBucket
	var total float64
	for rarityName, weight := range s.cfg.RarityWeights {
		rarity := domain.Rarity(rarityName)
		if weight <= 0 || len(s.catalog.FruitsByRarity(rarity)) == 0 {
			continue
		}
		buckets = append(buckets, rarityBucket{rarity: rarity, weight: weight})
		total += weight
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: no pullable rarities configured", domain.ErrInvalidInput)
	}

	// Map iteration order is random; sort so a deterministic rnd yields a
	// deterministic roll.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].rarity.Order() < buckets[j].rarity.Order()
	})

	roll := s.rnd() * total
	chosen := buckets[len(buckets)-1].rarity
	for _, b := range buckets {
		if roll < b.weight {
			chosen = b.rarity
			break
		}
		roll -= b.weight
	}

	fruits := s.catalog.FruitsByRarity(chosen)
	pick := int(s.rnd() * float64(len(fruits)))
	if pick >= len(fruits) {
		pick = len(fruits) - 1
	}
	fruit := fruits[pick]
	return &fruit, nil
}

func (s *service) countCopies(ctx context.Context, userID, fruitID string) (int, error) {
	rows, err := s.repo.GetOwnedFruits(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range rows {
		if row.FruitID == fruitID {
			count++
		}
	}
	return count, nil
}

// rarityBucket is one weighted entry in the pull roll.
type rarityBucket struct {
	rarity domain.Rarity
	weight float64
}
