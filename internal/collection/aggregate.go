package collection

import (
	"math"
	"sort"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// FruitLookup resolves a fruit id to its catalog definition.
// Returning nil means the id has no definition; aggregation fails soft by
// scoring it at the lowest tier's base power.
type FruitLookup func(fruitID string) *domain.Fruit

// Aggregate groups acquisition rows into holdings and computes total power.
// It is a pure function of the row multiset: calling it twice without
// mutation yields identical output.
//
// effectivePower = floor(basePower * (1 + (count-1) * dupBonusRate))
// totalPower     = sum over distinct fruits of effectivePower * count
func Aggregate(rows []domain.OwnedFruit, lookup FruitLookup, dupBonusRate float64) domain.HoldingsSummary {
	summary := domain.HoldingsSummary{}
	if len(rows) == 0 {
		// Empty collection is zero power, not an error.
		return summary
	}
	summary.UserID = rows[0].OwnerID

	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.FruitID]++
	}

	holdings := make([]domain.Holding, 0, len(counts))
	for fruitID, count := range counts {
		basePower := domain.RarityCommon.DefaultBasePower()
		if fruit := lookup(fruitID); fruit != nil {
			basePower = fruit.EffectiveBasePower()
		}

		effective := EffectivePower(basePower, count, dupBonusRate)
		holdings = append(holdings, domain.Holding{
			FruitID:        fruitID,
			Count:          count,
			BasePower:      basePower,
			EffectivePower: effective,
		})
		summary.TotalPower += effective * count
	}

	// Strongest first; stable tiebreak keeps output deterministic.
	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].EffectivePower != holdings[j].EffectivePower {
			return holdings[i].EffectivePower > holdings[j].EffectivePower
		}
		return holdings[i].FruitID < holdings[j].FruitID
	})
	summary.Holdings = holdings

	return summary
}

// EffectivePower applies the duplicate-stacking bonus to a base power.
// A single copy is worth exactly the base power.
func EffectivePower(basePower, count int, dupBonusRate float64) int {
	if count <= 0 {
		return 0
	}
	return int(math.Floor(float64(basePower) * (1 + float64(count-1)*dupBonusRate)))
}
