package element

import (
	"encoding/json"
	"fmt"
	"os"
)

// Tier classifies an attacker-vs-defender element pairing.
type Tier string

const (
	TierStrong  Tier = "strong"
	TierWeak    Tier = "weak"
	TierNeutral Tier = "neutral"
)

// Fixed damage multipliers per tier.
const (
	StrongMultiplier  = 1.5
	WeakMultiplier    = 0.6
	NeutralMultiplier = 1.0
)

// Effectiveness is the result of a counter-matrix lookup.
type Effectiveness struct {
	Multiplier float64
	Tier       Tier
}

// Relations lists the elements one element counters and is countered by.
// The matrix is read literally from its table: A strong-vs-B does not imply
// anything about B-vs-A.
type Relations struct {
	StrongAgainst []string `json:"strong_against"`
	WeakAgainst   []string `json:"weak_against"`
}

// Config is the JSON form of the counter matrix.
type Config struct {
	Version  string               `json:"version"`
	Elements map[string]Relations `json:"elements"`
}

// Matrix answers effectiveness lookups. Built once at process start,
// safe for concurrent use.
type Matrix struct {
	strong map[string]map[string]struct{}
	weak   map[string]map[string]struct{}
}

// NewMatrix builds a matrix from config.
func NewMatrix(config *Config) *Matrix {
	m := &Matrix{
		strong: make(map[string]map[string]struct{}),
		weak:   make(map[string]map[string]struct{}),
	}
	for elem, rel := range config.Elements {
		m.strong[elem] = toSet(rel.StrongAgainst)
		m.weak[elem] = toSet(rel.WeakAgainst)
	}
	return m
}

// LoadMatrix reads the counter matrix from a JSON file.
func LoadMatrix(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read element config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse element config: %w", err)
	}

	return NewMatrix(&config), nil
}

// Effectiveness looks up the attacker-vs-defender pairing. Unknown or empty
// elements on either side are neutral - elemental gaps are data gaps, not
// errors.
func (m *Matrix) Effectiveness(attacker, defender string) Effectiveness {
	if attacker == "" || defender == "" {
		return Effectiveness{Multiplier: NeutralMultiplier, Tier: TierNeutral}
	}
	if _, ok := m.strong[attacker][defender]; ok {
		return Effectiveness{Multiplier: StrongMultiplier, Tier: TierStrong}
	}
	if _, ok := m.weak[attacker][defender]; ok {
		return Effectiveness{Multiplier: WeakMultiplier, Tier: TierWeak}
	}
	return Effectiveness{Multiplier: NeutralMultiplier, Tier: TierNeutral}
}

// Resists reports whether defender's element resists the attacker's element,
// i.e. the attacker is weak against it.
func (m *Matrix) Resists(attacker, defender string) bool {
	return m.Effectiveness(attacker, defender).Tier == TierWeak
}

func toSet(elems []string) map[string]struct{} {
	set := make(map[string]struct{}, len(elems))
	for _, e := range elems {
		set[e] = struct{}{}
	}
	return set
}
