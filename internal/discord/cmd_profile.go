package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your berry ledger and crew strength",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		ctx := context.Background()

		account, err := svc.Economy.GetAccount(ctx, user.ID)
		if err != nil {
			slog.Error("Failed to get account", "user", user.ID, "error", err)
			respondError(s, i, "Failed to retrieve profile. Please try again later.")
			return
		}

		summary, err := svc.Collection.ComputeHoldings(ctx, user.ID)
		if err != nil {
			slog.Error("Failed to compute holdings", "user", user.ID, "error", err)
			respondError(s, i, "Failed to retrieve profile. Please try again later.")
			return
		}

		rate, err := svc.Economy.HourlyRate(ctx, user.ID)
		if err != nil {
			slog.Error("Failed to get hourly rate", "user", user.ID, "error", err)
			respondError(s, i, "Failed to retrieve profile. Please try again later.")
			return
		}

		fruitCount := 0
		for _, h := range summary.Holdings {
			fruitCount += h.Count
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s's Profile", user.Username),
			Color: 0x3498db,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL(""),
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "💰 Balance",
					Value:  formatBerries(account.Balance) + " berries",
					Inline: true,
				},
				{
					Name:   "📈 Income",
					Value:  fmt.Sprintf("%s/hour", formatBerries(int64(rate))),
					Inline: true,
				},
				{
					Name:   "⚔️ Total Power",
					Value:  formatBerries(int64(summary.TotalPower)),
					Inline: true,
				},
				{
					Name:   "🍈 Devil Fruits",
					Value:  fmt.Sprintf("%d (%d distinct)", fruitCount, len(summary.Holdings)),
					Inline: true,
				},
				{
					Name:   "🧾 Lifetime",
					Value:  fmt.Sprintf("earned %s / spent %s", formatBerries(account.TotalEarned), formatBerries(account.TotalSpent)),
					Inline: false,
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: FooterGrandLineBot,
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
