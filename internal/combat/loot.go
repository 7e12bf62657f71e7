package combat

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
	"github.com/osse101/GrandLineBot_Go/internal/metrics"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

// transferLoot settles a won raid in a single transaction: berries move
// between both ledgers and up to MaxItemsStolen fruit rows change owner.
// Any failure rolls the whole settlement back and surfaces ErrTransferFailed.
func (s *service) transferLoot(ctx context.Context, result *domain.RaidResult) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginRaidTx(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock both accounts in a fixed order so two concurrent raids between
	// the same pair cannot deadlock.
	first, second := result.AttackerID, result.DefenderID
	if second < first {
		first, second = second, first
	}
	accounts := make(map[string]*domain.Account, 2)
	for _, userID := range []string{first, second} {
		account, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
		accounts[userID] = account
	}
	attacker := accounts[result.AttackerID]
	defender := accounts[result.DefenderID]

	stolen := s.rollBerrySteal(defender.Balance)
	if stolen > 0 {
		defender.Balance -= stolen
		defender.TotalSpent += stolen
		attacker.Balance += stolen
		attacker.TotalEarned += stolen
	}

	stolenFruits, err := s.rollFruitSteals(ctx, tx, result.DefenderID, result.AttackerID)
	if err != nil {
		return err
	}

	for _, account := range []*domain.Account{attacker, defender} {
		if err := tx.UpdateAccount(ctx, account); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}

	result.StolenBerries = stolen
	result.StolenFruits = stolenFruits

	s.collection.InvalidatePower(result.AttackerID)
	s.collection.InvalidatePower(result.DefenderID)

	if stolen > 0 {
		metrics.BerriesCredited.WithLabelValues(domain.ReasonRaidLoot).Add(float64(stolen))
		metrics.BerriesDebited.WithLabelValues(domain.ReasonRaidLoss).Add(float64(stolen))
	}
	metrics.FruitsStolen.Add(float64(len(stolenFruits)))

	log.Info(LogMsgLootTransferred,
		"attacker", result.AttackerID,
		"defender", result.DefenderID,
		"berries", stolen,
		"fruits", len(stolenFruits))
	return nil
}

// rollBerrySteal picks a fraction of the loser's balance between the
// configured min and max, floored. A broke loser yields nothing.
func (s *service) rollBerrySteal(balance int64) int64 {
	if balance <= 0 {
		return 0
	}
	fraction := s.cfg.BerryStealMin + s.rnd()*(s.cfg.BerryStealMax-s.cfg.BerryStealMin)
	return int64(math.Floor(float64(balance) * fraction))
}

// rollFruitSteals rolls each of the loser's distinct fruits independently
// against ItemStealChance and transfers one row per success, capped at
// MaxItemsStolen. Distinct fruits are visited in ID order so the cap bites
// deterministically under a seeded RNG.
func (s *service) rollFruitSteals(ctx context.Context, tx repository.RaidTx, loserID, winnerID string) ([]string, error) {
	rows, err := tx.GetOwnedFruitsForUpdate(ctx, loserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	byFruit := make(map[string]domain.OwnedFruit)
	for _, row := range rows {
		if _, seen := byFruit[row.FruitID]; !seen {
			byFruit[row.FruitID] = row
		}
	}
	fruitIDs := make([]string, 0, len(byFruit))
	for fruitID := range byFruit {
		fruitIDs = append(fruitIDs, fruitID)
	}
	sort.Strings(fruitIDs)

	var stolen []string
	for _, fruitID := range fruitIDs {
		if len(stolen) >= s.cfg.MaxItemsStolen {
			break
		}
		if s.rnd() >= s.cfg.ItemStealChance {
			continue
		}
		if err := tx.TransferOwnedFruit(ctx, byFruit[fruitID].ID, winnerID); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
		stolen = append(stolen, fruitID)
	}
	return stolen, nil
}
