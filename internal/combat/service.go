package combat

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GrandLineBot_Go/internal/catalog"
	"github.com/osse101/GrandLineBot_Go/internal/collection"
	"github.com/osse101/GrandLineBot_Go/internal/config"
	"github.com/osse101/GrandLineBot_Go/internal/cooldown"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/element"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
	"github.com/osse101/GrandLineBot_Go/internal/metrics"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
	"github.com/osse101/GrandLineBot_Go/internal/utils"
)

// Service defines the interface for raid resolution
type Service interface {
	// ResolveRaid validates, fights and settles one raid. Validation
	// failures (self-target, cooldown, protection, worthless target) are
	// returned as their distinct domain errors and never mutate state.
	ResolveRaid(ctx context.Context, attackerID, defenderID string, mode domain.RaidMode) (*domain.RaidResult, error)
}

type service struct {
	repo       repository.Raid
	accounts   repository.Account
	collection collection.Service
	catalog    catalog.Service
	matrix     *element.Matrix
	cooldown   cooldown.Service
	cfg        config.CombatConfig
	rnd        func() float64 // For rolling RNG
}

// NewService creates a new combat service
func NewService(repo repository.Raid, accounts repository.Account, collectionSvc collection.Service, catalogSvc catalog.Service, matrix *element.Matrix, cooldownSvc cooldown.Service, cfg config.CombatConfig) Service {
	return &service{
		repo:       repo,
		accounts:   accounts,
		collection: collectionSvc,
		catalog:    catalogSvc,
		matrix:     matrix,
		cooldown:   cooldownSvc,
		cfg:        cfg,
		rnd:        utils.RandomFloat,
	}
}

func (s *service) ResolveRaid(ctx context.Context, attackerID, defenderID string, mode domain.RaidMode) (*domain.RaidResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResolveRaidCalled, "attacker", attackerID, "defender", defenderID, "mode", mode)

	if err := s.validate(ctx, attackerID, defenderID); err != nil {
		return nil, err
	}

	sess, err := s.prepare(ctx, attackerID, defenderID)
	if err != nil {
		metrics.RaidsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	var victory bool
	switch mode {
	case domain.RaidModeQuick:
		victory = sess.runQuick(s.cfg, s.rnd)
	default:
		victory = sess.runFull(s.matrix, s.cfg, s.rnd)
	}

	result := &domain.RaidResult{
		AttackerID:    attackerID,
		DefenderID:    defenderID,
		Victory:       victory,
		AttackerPower: sess.attacker.TotalPower,
		DefenderPower: sess.defender.TotalPower,
		Turns:         sess.turns,
		Log:           sess.log,
	}

	if victory {
		if err := s.transferLoot(ctx, result); err != nil {
			metrics.RaidsTotal.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, err
		}
	}

	s.stampWindows(ctx, attackerID, defenderID)

	outcome := metrics.OutcomeDefeat
	if victory {
		outcome = metrics.OutcomeVictory
	}
	metrics.RaidsTotal.WithLabelValues(outcome).Inc()

	log.Info(LogMsgRaidResolved,
		"attacker", attackerID,
		"defender", defenderID,
		"victory", victory,
		"turns", result.Turns,
		"stolen_berries", result.StolenBerries,
		"stolen_fruits", len(result.StolenFruits))
	return result, nil
}

// validate applies the raid preconditions. Each rejection has a distinct
// reason so the caller can tell the player what to do about it.
func (s *service) validate(ctx context.Context, attackerID, defenderID string) error {
	if attackerID == defenderID {
		return domain.ErrSelfTarget
	}

	onCooldown, remaining, err := s.cooldown.CheckCooldown(ctx, attackerID, domain.ActionRaid)
	if err != nil {
		return fmt.Errorf("failed to check raid cooldown: %w", err)
	}
	if onCooldown {
		return fmt.Errorf("%w: %s remaining", domain.ErrRaidOnCooldown, remaining.Round(time.Second))
	}

	protected, remaining, err := s.cooldown.CheckCooldown(ctx, defenderID, domain.ActionProtection)
	if err != nil {
		return fmt.Errorf("failed to check protection window: %w", err)
	}
	if protected {
		return fmt.Errorf("%w: %s remaining", domain.ErrTargetProtected, remaining.Round(time.Second))
	}

	account, err := s.accounts.GetAccount(ctx, defenderID)
	if err != nil {
		return fmt.Errorf("failed to get defender account: %w", err)
	}
	power, err := s.collection.TotalPower(ctx, defenderID)
	if err != nil {
		return fmt.Errorf("failed to get defender power: %w", err)
	}
	if account.Balance < s.cfg.MinTargetBalance && power == 0 {
		return domain.ErrTargetWorthless
	}

	return nil
}

// prepare snapshots both sides. Snapshots are taken once; the battle math
// never touches the store again.
func (s *service) prepare(ctx context.Context, attackerID, defenderID string) (*session, error) {
	attacker, attackerElems, err := s.snapshot(ctx, attackerID)
	if err != nil {
		return nil, err
	}
	defender, defenderElems, err := s.snapshot(ctx, defenderID)
	if err != nil {
		return nil, err
	}

	return &session{
		attacker:      *attacker,
		defender:      *defender,
		attackerElems: attackerElems,
		defenderElems: defenderElems,
		defenderHP:    defender.MaxHP,
	}, nil
}

func (s *service) snapshot(ctx context.Context, userID string) (*domain.CombatantSnapshot, []string, error) {
	summary, err := s.collection.ComputeHoldings(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to snapshot combatant %s: %w", userID, err)
	}

	elems := make([]string, len(summary.Holdings))
	for i, holding := range summary.Holdings {
		if fruit, err := s.catalog.GetFruit(holding.FruitID); err == nil {
			elems[i] = fruit.Element
		}
		// Unknown fruits fight element-less; the matrix treats that as neutral.
	}

	return &domain.CombatantSnapshot{
		UserID:     userID,
		TotalPower: summary.TotalPower,
		MaxHP:      maxHP(summary.TotalPower, s.cfg),
		Fruits:     summary.Holdings,
	}, elems, nil
}

// stampWindows records the attacker's raid cooldown and the defender's
// protection window. Failures here are logged, not fatal: the raid already
// resolved and the player owed a result.
func (s *service) stampWindows(ctx context.Context, attackerID, defenderID string) {
	log := logger.FromContext(ctx)
	now := time.Now()

	if err := s.cooldown.StartWindow(ctx, attackerID, domain.ActionRaid, now); err != nil {
		log.Error("Failed to start raid cooldown", "userID", attackerID, "error", err)
	}
	if err := s.cooldown.StartWindow(ctx, defenderID, domain.ActionProtection, now); err != nil {
		log.Error("Failed to start protection window", "userID", defenderID, "error", err)
	}
}
