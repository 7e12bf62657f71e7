package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 25
)

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the strongest collections on the Grand Line",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "size",
				Description: fmt.Sprintf("Number of entries (default: %d)", defaultLeaderboardSize),
				Required:    false,
				MinValue:    &[]float64{1}[0],
				MaxValue:    maxLeaderboardSize,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		handleEmbedResponse(s, i, func() (string, error) {
			size := defaultLeaderboardSize
			if options := getOptions(i); len(options) > 0 {
				size = int(options[0].IntValue())
			}

			entries, err := svc.Collection.TopCollectors(context.Background(), size)
			if err != nil {
				return "", err
			}

			if len(entries) == 0 {
				return "Nobody has pulled a fruit yet. The seas are quiet.", nil
			}

			medals := []string{"🥇", "🥈", "🥉"}
			var b strings.Builder
			for idx, entry := range entries {
				rank := fmt.Sprintf("%d.", idx+1)
				if idx < len(medals) {
					rank = medals[idx]
				}
				fmt.Fprintf(&b, "%s <@%s> — **%s** power (%d fruits)\n",
					rank, entry.UserID, formatBerries(int64(entry.TotalPower)), len(entry.Holdings))
			}

			return b.String(), nil
		}, ResponseConfig{
			Title: "🏆 Power Leaderboard",
			Color: 0xf1c40f,
		})
	}

	return cmd, handler
}
