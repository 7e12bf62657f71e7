package domain

// Fruit represents a Devil Fruit definition from the catalog.
// Definitions are immutable after load; ownership is tracked separately
// as OwnedFruit rows.
type Fruit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`    // Paramecia, Zoan, Logia, Mythical Zoan
	Rarity   Rarity `json:"rarity"`
	Element  string `json:"element"` // consulted by the counter matrix, may be empty
	BasePower int   `json:"base_power,omitempty"` // falls back to the rarity default when 0
}

// Fruit type categories
const (
	FruitTypeParamecia   = "paramecia"
	FruitTypeZoan        = "zoan"
	FruitTypeLogia       = "logia"
	FruitTypeMythicZoan  = "mythical_zoan"
)

// Rarity is the drop tier of a fruit. Tiers are totally ordered and drive
// both gacha drop weighting and the default base-power scale.
type Rarity string

const (
	RarityCommon     Rarity = "COMMON"
	RarityUncommon   Rarity = "UNCOMMON"
	RarityRare       Rarity = "RARE"
	RarityEpic       Rarity = "EPIC"
	RarityLegendary  Rarity = "LEGENDARY"
	RarityMythical   Rarity = "MYTHICAL"
	RarityOmnipotent Rarity = "OMNIPOTENT"
)

// rarityOrder maps each tier to its position in the ordering, lowest first.
var rarityOrder = map[Rarity]int{
	RarityCommon:     0,
	RarityUncommon:   1,
	RarityRare:       2,
	RarityEpic:       3,
	RarityLegendary:  4,
	RarityMythical:   5,
	RarityOmnipotent: 6,
}

// rarityBasePower is the canonical default base power per tier, used when a
// catalog entry does not carry an explicit base_power.
var rarityBasePower = map[Rarity]int{
	RarityCommon:     50,
	RarityUncommon:   100,
	RarityRare:       200,
	RarityEpic:       350,
	RarityLegendary:  500,
	RarityMythical:   750,
	RarityOmnipotent: 1000,
}

// Order returns the tier's position in the rarity ordering.
// Unknown tiers sort with common.
func (r Rarity) Order() int {
	if o, ok := rarityOrder[r]; ok {
		return o
	}
	return 0
}

// DefaultBasePower returns the default base power for the tier.
// Unknown tiers fall back to common's base power rather than erroring:
// a data gap must never break aggregation.
func (r Rarity) DefaultBasePower() int {
	if p, ok := rarityBasePower[r]; ok {
		return p
	}
	return rarityBasePower[RarityCommon]
}

// Valid reports whether the rarity is a known tier.
func (r Rarity) Valid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// EffectiveBasePower returns the explicit base power when set, otherwise the
// rarity default.
func (f *Fruit) EffectiveBasePower() int {
	if f.BasePower > 0 {
		return f.BasePower
	}
	return f.Rarity.DefaultBasePower()
}
