package discord

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

var (
	titleCaser   = cases.Title(language.English)
	berryPrinter = message.NewPrinter(language.English)
)

// displayRarity renders a rarity tier for embeds, e.g. LEGENDARY -> "Legendary".
func displayRarity(r domain.Rarity) string {
	return titleCaser.String(strings.ToLower(string(r)))
}

// displayFruitType renders a catalog type for embeds, e.g. mythical_zoan -> "Mythical Zoan".
func displayFruitType(t string) string {
	return titleCaser.String(strings.ReplaceAll(t, "_", " "))
}

// formatBerries renders an amount with thousands separators, e.g. 1234567 -> "1,234,567".
func formatBerries(amount int64) string {
	return berryPrinter.Sprintf("%d", amount)
}

// rarityEmoji maps a tier to its embed marker. Unknown tiers get the common marker.
func rarityEmoji(r domain.Rarity) string {
	switch r {
	case domain.RarityUncommon:
		return "🟢"
	case domain.RarityRare:
		return "🔵"
	case domain.RarityEpic:
		return "🟣"
	case domain.RarityLegendary:
		return "🟠"
	case domain.RarityMythical:
		return "🔴"
	case domain.RarityOmnipotent:
		return "🌟"
	default:
		return "⚪"
	}
}
