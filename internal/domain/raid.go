package domain

// RaidMode selects how a raid is resolved. Both modes share one resolver;
// quick mode skips the per-fruit turn loop and rolls a single win probability
// from the power ratio.
type RaidMode string

const (
	RaidModeFull  RaidMode = "full"
	RaidModeQuick RaidMode = "quick"
)

// CombatantSnapshot is one side of a raid, captured before the first turn.
type CombatantSnapshot struct {
	UserID     string
	TotalPower int
	MaxHP      int
	Fruits     []Holding
}

// RaidResult is the summary returned after a raid resolves. Exactly one of
// Victory true/false is reported; the combat session itself is never
// persisted, only this summary.
type RaidResult struct {
	AttackerID    string   `json:"attacker_id"`
	DefenderID    string   `json:"defender_id"`
	Victory       bool     `json:"victory"`
	AttackerPower int      `json:"attacker_power"`
	DefenderPower int      `json:"defender_power"`
	StolenBerries int64    `json:"stolen_berries"`
	StolenFruits  []string `json:"stolen_fruits,omitempty"`
	Turns         int      `json:"turns"`
	Log           []string `json:"log,omitempty"`
}

// Cooldown kinds used by the raid and gacha flows.
const (
	ActionPull       = "pull"
	ActionRaid       = "raid"
	ActionProtection = "protection"
)
