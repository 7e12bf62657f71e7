package economy

import (
	"math"

	"github.com/osse101/GrandLineBot_Go/internal/config"
)

// HourlyRate computes the berry income rate for a given total power.
// Zero power means zero income regardless of the configured base rate -
// that is the business rule, not a fallback.
func HourlyRate(totalPower int, cfg config.EconomyConfig) int {
	if totalPower <= 0 {
		return 0
	}

	rate := float64(cfg.BaseRate) + float64(totalPower)*cfg.CPMultiplier
	rate += float64(milestoneBonus(totalPower, cfg.Thresholds))

	return int(math.Floor(rate))
}

// milestoneBonus returns the bonus of the highest threshold crossed.
// Bonuses are non-cumulative.
func milestoneBonus(totalPower int, thresholds []config.PowerThreshold) int {
	best := 0
	bestPower := -1
	for _, t := range thresholds {
		if totalPower >= t.Power && t.Power > bestPower {
			best = t.Bonus
			bestPower = t.Power
		}
	}
	return best
}

// accrualAmount converts an hourly rate and elapsed seconds into whole
// berries, flooring so fractional currency never reaches the ledger.
func accrualAmount(hourlyRate int, elapsedSeconds float64) int64 {
	if hourlyRate <= 0 || elapsedSeconds <= 0 {
		return 0
	}
	return int64(math.Floor(float64(hourlyRate) * elapsedSeconds / 3600))
}
