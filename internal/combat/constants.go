package combat

// Log message constants
const (
	LogMsgResolveRaidCalled = "ResolveRaid called"
	LogMsgRaidResolved      = "Raid resolved"
	LogMsgLootTransferred   = "Raid loot transferred"
)

// Battle log format strings, surfaced to players in the raid summary
const (
	LogFmtFullBlock   = "%s attack fully blocked by %s"
	LogFmtResistedHit = "%s attack resisted, %d damage"
	LogFmtDirectHit   = "%s attack hits for %d damage"
	LogFmtDefeated    = "defender defeated on turn %d"
	LogFmtSurvived    = "defender survived with %d HP"
	LogFmtQuickRoll   = "power ratio %.2f, win chance %.0f%%"
)
