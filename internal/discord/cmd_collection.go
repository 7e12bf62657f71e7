package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// maxCollectionLines caps the embed body; strong collections are listed first
// so truncation drops the weakest holdings.
const maxCollectionLines = 20

// CollectionCommand returns the collection command definition and handler
func CollectionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "collection",
		Description: "List the Devil Fruits you own",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)

			summary, err := svc.Collection.ComputeHoldings(context.Background(), user.ID)
			if err != nil {
				return "", err
			}

			if len(summary.Holdings) == 0 {
				return "No fruits yet. Try `/pull`!", nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Total power: **%s**\n\n", formatBerries(int64(summary.TotalPower)))

			for idx, h := range summary.Holdings {
				if idx == maxCollectionLines {
					fmt.Fprintf(&b, "… and %d more\n", len(summary.Holdings)-maxCollectionLines)
					break
				}

				name := h.FruitID
				marker := "⚪"
				if fruit, err := svc.Catalog.GetFruit(h.FruitID); err == nil {
					name = fruit.Name
					marker = rarityEmoji(fruit.Rarity)
				}

				line := fmt.Sprintf("%s **%s** — %s power", marker, name, formatBerries(int64(h.EffectivePower)))
				if h.Count > 1 {
					line += fmt.Sprintf(" (×%d)", h.Count)
				}
				b.WriteString(line + "\n")
			}

			return b.String(), nil
		}, ResponseConfig{
			Title: "🍈 Devil Fruit Collection",
			Color: 0x9b59b6,
		})
	}

	return cmd, handler
}
