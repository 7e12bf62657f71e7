package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Game config file names under GameConfigDir
const (
	GameConfigFile     = "game.json"
	FruitsConfigFile   = "fruits.json"
	ElementsConfigFile = "elements.json"
)

// EconomyConfig tunes passive income. All rate math is floored before the
// ledger is touched so fractional berries never exist.
type EconomyConfig struct {
	BaseRate        int              `json:"base_rate" validate:"gte=0"`
	CPMultiplier    float64          `json:"cp_multiplier" validate:"gte=0"`
	MaxAccrualHours float64          `json:"max_accrual_hours" validate:"gt=0"`
	DupBonusRate    float64          `json:"dup_bonus_rate" validate:"gte=0"`
	Thresholds      []PowerThreshold `json:"thresholds" validate:"dive"`
}

// PowerThreshold grants a flat hourly bonus once total power crosses Power.
// Only the highest crossed threshold applies.
type PowerThreshold struct {
	Power int `json:"power" validate:"gt=0"`
	Bonus int `json:"bonus" validate:"gte=0"`
}

// GachaConfig tunes the fruit pull.
type GachaConfig struct {
	PullCost            int64              `json:"pull_cost" validate:"gt=0"`
	PullCooldownSeconds int                `json:"pull_cooldown_seconds" validate:"gte=0"`
	RarityWeights       map[string]float64 `json:"rarity_weights" validate:"required,min=1"`
}

// PullCooldown returns the pull cooldown as a duration.
func (g GachaConfig) PullCooldown() time.Duration {
	return time.Duration(g.PullCooldownSeconds) * time.Second
}

// CombatConfig tunes raid resolution and loot.
type CombatConfig struct {
	BerryStealMin     float64 `json:"berry_steal_min" validate:"gte=0,lte=1"`
	BerryStealMax     float64 `json:"berry_steal_max" validate:"gte=0,lte=1,gtefield=BerryStealMin"`
	ItemStealChance   float64 `json:"item_steal_chance" validate:"gte=0,lte=1"`
	MaxItemsStolen    int     `json:"max_items_stolen" validate:"gte=0"`
	RaidCooldownSec   int     `json:"raid_cooldown_seconds" validate:"gte=0"`
	ProtectionSec     int     `json:"protection_seconds" validate:"gte=0"`
	MinTargetBalance  int64   `json:"min_target_balance" validate:"gte=0"`
	HPBase            int     `json:"hp_base" validate:"gt=0"`
	HPDivisor         int     `json:"hp_divisor" validate:"gt=0"`
	HPCap             int     `json:"hp_cap" validate:"gt=0"`
	DamageCoefficient float64 `json:"damage_coefficient" validate:"gt=0"`
	DamageVariance    float64 `json:"damage_variance" validate:"gte=0,lt=1"`
	MaxDamageFraction float64 `json:"max_damage_fraction" validate:"gt=0,lte=1"`
	MinDamage         int     `json:"min_damage" validate:"gte=0"`
	BlockChance       float64 `json:"block_chance" validate:"gte=0,lte=1"`
	ResistReduction   float64 `json:"resist_reduction" validate:"gte=0,lte=1"`
	TurnCap           int     `json:"turn_cap" validate:"gt=0"`
	MinWinProb        float64 `json:"min_win_prob" validate:"gte=0,lte=1"`
	MaxWinProb        float64 `json:"max_win_prob" validate:"gte=0,lte=1,gtefield=MinWinProb"`
}

// RaidCooldown returns the attacker raid cooldown as a duration.
func (c CombatConfig) RaidCooldown() time.Duration {
	return time.Duration(c.RaidCooldownSec) * time.Second
}

// Protection returns the defender protection window as a duration.
func (c CombatConfig) Protection() time.Duration {
	return time.Duration(c.ProtectionSec) * time.Second
}

// GameConfig is the full game tuning, loaded once at startup and threaded
// explicitly through service constructors - never a process-wide singleton.
type GameConfig struct {
	Economy EconomyConfig `json:"economy" validate:"required"`
	Gacha   GachaConfig   `json:"gacha" validate:"required"`
	Combat  CombatConfig  `json:"combat" validate:"required"`
}

// LoadGameConfig reads and validates the game tuning file.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &cfg, nil
}

// DefaultGameConfig returns the tuning used when no file overrides are
// deployed. Tests build on these values.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Economy: EconomyConfig{
			BaseRate:        100,
			CPMultiplier:    0.1,
			MaxAccrualHours: 24,
			DupBonusRate:    0.01,
			Thresholds: []PowerThreshold{
				{Power: 50000, Bonus: 500},
				{Power: 150000, Bonus: 1500},
				{Power: 500000, Bonus: 5000},
			},
		},
		Gacha: GachaConfig{
			PullCost:            5000,
			PullCooldownSeconds: 3600,
			RarityWeights: map[string]float64{
				"COMMON":     40,
				"UNCOMMON":   25,
				"RARE":       10,
				"EPIC":       5,
				"LEGENDARY":  2.5,
				"MYTHICAL":   1,
				"OMNIPOTENT": 0.1,
			},
		},
		Combat: CombatConfig{
			BerryStealMin:     0.10,
			BerryStealMax:     0.50,
			ItemStealChance:   0.15,
			MaxItemsStolen:    2,
			RaidCooldownSec:   1800,
			ProtectionSec:     3600,
			MinTargetBalance:  1000,
			HPBase:            1000,
			HPDivisor:         10,
			HPCap:             10000,
			DamageCoefficient: 0.25,
			DamageVariance:    0.20,
			MaxDamageFraction: 0.40,
			MinDamage:         25,
			BlockChance:       0.25,
			ResistReduction:   0.50,
			TurnCap:           50,
			MinWinProb:        0.10,
			MaxWinProb:        0.90,
		},
	}
}
