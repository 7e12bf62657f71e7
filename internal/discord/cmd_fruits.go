package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// FruitsCommand returns the catalog browser command definition and handler
func FruitsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	rarities := []domain.Rarity{
		domain.RarityCommon,
		domain.RarityUncommon,
		domain.RarityRare,
		domain.RarityEpic,
		domain.RarityLegendary,
		domain.RarityMythical,
		domain.RarityOmnipotent,
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(rarities))
	for _, r := range rarities {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  displayRarity(r),
			Value: string(r),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "fruits",
		Description: "Browse the Devil Fruit catalog",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "rarity",
				Description: "Only show fruits of one tier",
				Required:    false,
				Choices:     choices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		handleEmbedResponse(s, i, func() (string, error) {
			var fruits []domain.Fruit
			if options := getOptions(i); len(options) > 0 {
				fruits = svc.Catalog.FruitsByRarity(domain.Rarity(options[0].StringValue()))
			} else {
				fruits = svc.Catalog.AllFruits()
			}

			if len(fruits) == 0 {
				return "The catalog has nothing at that tier.", nil
			}

			var b strings.Builder
			lastRarity := domain.Rarity("")
			for _, fruit := range fruits {
				if fruit.Rarity != lastRarity {
					fmt.Fprintf(&b, "\n%s **%s**\n", rarityEmoji(fruit.Rarity), displayRarity(fruit.Rarity))
					lastRarity = fruit.Rarity
				}
				fmt.Fprintf(&b, "• %s (%s, %s power)\n",
					fruit.Name, displayFruitType(fruit.Type), formatBerries(int64(fruit.EffectiveBasePower())))
			}

			return b.String(), nil
		}, ResponseConfig{
			Title: "📖 Devil Fruit Catalog",
			Color: 0x1abc9c,
		})
	}

	return cmd, handler
}
