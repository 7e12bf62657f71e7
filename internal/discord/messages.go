package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Berries!**\nYour ledger can't cover this."

	// Catalog
	MsgFruitNotFound = "❓ **Fruit Not Found**\nNo Devil Fruit by that name. Maybe check the spelling?"

	// User
	MsgUserNotFound = "👤 **User Not Found**\nThat pirate hasn't set sail yet."

	// Raids
	MsgSelfTarget      = "🪞 **Easy There**\nYou can't raid your own ship."
	MsgTargetProtected = "🛡️ **Target Protected**\nThat crew was raided recently and is still under protection."
	MsgTargetWorthless = "🏴‍☠️ **Nothing To Take**\nThat target has no berries and no fruits worth stealing."

	// Cooldowns
	MsgCooldownActive = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."

	MsgGenericError = "❌ Something went wrong."
)
