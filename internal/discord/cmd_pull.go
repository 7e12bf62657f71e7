package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// PullCommand returns the gacha pull command definition and handler
func PullCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pull",
		Description: "Spend berries on a Devil Fruit pull",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)

			result, err := svc.Gacha.Pull(context.Background(), user.ID)
			if err != nil {
				return "", err
			}

			msg := fmt.Sprintf("%s **%s**\n%s %s\n\nCopies owned: **%d**\nBalance: **%s** berries",
				rarityEmoji(result.Fruit.Rarity),
				result.Fruit.Name,
				displayRarity(result.Fruit.Rarity),
				displayFruitType(result.Fruit.Type),
				result.Copies,
				formatBerries(result.NewBalance),
			)
			return msg, nil
		}, ResponseConfig{
			Title: "🍈 Devil Fruit Pull",
			Color: 0x9b59b6,
		})
	}

	return cmd, handler
}
