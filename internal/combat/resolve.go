package combat

import (
	"fmt"
	"math"

	"github.com/osse101/GrandLineBot_Go/internal/config"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/element"
	"github.com/osse101/GrandLineBot_Go/internal/utils"
)

// session holds the transient state of one raid resolution. It lives only
// for the duration of the ResolveRaid call; only the summary survives.
// Element slices are indexed alongside the snapshot's Fruits.
type session struct {
	attacker      domain.CombatantSnapshot
	defender      domain.CombatantSnapshot
	attackerElems []string
	defenderElems []string

	defenderHP int
	turns      int
	log        []string
}

// winProbStep maps a minimum power ratio to a win probability for quick
// resolution. Ordered highest ratio first; the first step at or below the
// ratio applies.
type winProbStep struct {
	minRatio float64
	prob     float64
}

var winProbSteps = []winProbStep{
	{minRatio: 3.0, prob: 0.90},
	{minRatio: 2.0, prob: 0.80},
	{minRatio: 1.5, prob: 0.70},
	{minRatio: 1.2, prob: 0.62},
	{minRatio: 1.0, prob: 0.55},
	{minRatio: 0.8, prob: 0.45},
	{minRatio: 0.5, prob: 0.30},
	{minRatio: 0.0, prob: 0.15},
}

// maxHP derives a combatant's hit points from total power. Sub-linear on
// purpose: power differences decide damage per hit, not an unbounded HP race.
func maxHP(totalPower int, cfg config.CombatConfig) int {
	hp := cfg.HPBase + totalPower/cfg.HPDivisor
	if hp > cfg.HPCap {
		hp = cfg.HPCap
	}
	return hp
}

// runFull plays the per-fruit turn loop: one attack step per attacker fruit
// in holding order (strongest first), stopping early when the defender falls
// or the turn cap is reached. The attacker wins iff the defender's HP
// reaches zero.
func (s *session) runFull(matrix *element.Matrix, cfg config.CombatConfig, rnd func() float64) bool {
	for i := range s.attacker.Fruits {
		if s.defenderHP <= 0 || s.turns >= cfg.TurnCap {
			break
		}
		s.turns++

		dmg := s.attackStep(s.attackerElems[i], matrix, cfg, rnd)
		s.defenderHP -= dmg
	}

	if s.defenderHP <= 0 {
		s.log = append(s.log, fmt.Sprintf(LogFmtDefeated, s.turns))
		return true
	}
	s.log = append(s.log, fmt.Sprintf(LogFmtSurvived, s.defenderHP))
	return false
}

// attackStep resolves a single fruit's attack and returns the damage dealt.
func (s *session) attackStep(attackElem string, matrix *element.Matrix, cfg config.CombatConfig, rnd func() float64) int {
	label := attackElem
	if label == "" {
		label = "plain"
	}

	// Defender resistance: any defender fruit whose element the attack is
	// weak against can soften or fully block the hit.
	resisting := ""
	for _, defElem := range s.defenderElems {
		if matrix.Resists(attackElem, defElem) {
			resisting = defElem
			break
		}
	}

	if resisting != "" && rnd() < cfg.BlockChance {
		s.log = append(s.log, fmt.Sprintf(LogFmtFullBlock, label, resisting))
		return 0
	}

	// Elemental multiplier against the defender's lead fruit.
	eff := element.Effectiveness{Multiplier: element.NeutralMultiplier, Tier: element.TierNeutral}
	if len(s.defenderElems) > 0 {
		eff = matrix.Effectiveness(attackElem, s.defenderElems[0])
	}

	dmg := float64(s.attacker.TotalPower) * cfg.DamageCoefficient * eff.Multiplier

	// Multiplicative variance, e.g. 0.20 swings the hit by up to 20% either way.
	dmg *= 1 + (rnd()*2-1)*cfg.DamageVariance

	if resisting != "" {
		dmg *= 1 - cfg.ResistReduction
	}

	// Per-hit cap keeps any single fruit from one-shotting the defender.
	maxHit := float64(s.defender.MaxHP) * cfg.MaxDamageFraction
	if dmg > maxHit {
		dmg = maxHit
	}

	final := int(math.Floor(dmg))
	if final < cfg.MinDamage {
		final = cfg.MinDamage
	}

	if resisting != "" {
		s.log = append(s.log, fmt.Sprintf(LogFmtResistedHit, label, final))
	} else {
		s.log = append(s.log, fmt.Sprintf(LogFmtDirectHit, label, final))
	}
	return final
}

// runQuick resolves the raid from the power ratio alone: the ratio maps
// through a fixed step function to a win probability, clamped so neither
// side is ever certain.
func (s *session) runQuick(cfg config.CombatConfig, rnd func() float64) bool {
	ratio := powerRatio(s.attacker.TotalPower, s.defender.TotalPower)
	prob := winProbability(ratio, cfg)

	s.turns = 1
	s.log = append(s.log, fmt.Sprintf(LogFmtQuickRoll, ratio, prob*100))

	return rnd() < prob
}

func powerRatio(attackerPower, defenderPower int) float64 {
	if defenderPower <= 0 {
		if attackerPower <= 0 {
			return 1.0
		}
		return math.Inf(1)
	}
	return float64(attackerPower) / float64(defenderPower)
}

func winProbability(ratio float64, cfg config.CombatConfig) float64 {
	prob := winProbSteps[len(winProbSteps)-1].prob
	for _, step := range winProbSteps {
		if ratio >= step.minRatio {
			prob = step.prob
			break
		}
	}
	return utils.Clamp(prob, cfg.MinWinProb, cfg.MaxWinProb)
}
