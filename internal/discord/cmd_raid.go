package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// raidLogTail limits how much of the combat log is echoed into the embed.
const raidLogTail = 6

// RaidCommand returns the raid command definition and handler
func RaidCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "raid",
		Description: "Raid another pirate's crew for berries and fruits",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Who to raid",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "mode",
				Description: "Battle mode (default: full)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Full battle", Value: string(domain.RaidModeFull)},
					{Name: "Quick resolve", Value: string(domain.RaidModeQuick)},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		attacker := getInteractionUser(i)
		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}

		target := options[0].UserValue(s)
		mode := domain.RaidModeFull
		if len(options) > 1 {
			mode = domain.RaidMode(options[1].StringValue())
		}

		result, err := svc.Combat.ResolveRaid(context.Background(), attacker.ID, target.ID, mode)
		if err != nil {
			slog.Error("Raid failed", "attacker", attacker.ID, "target", target.ID, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		sendEmbed(s, i, raidResultEmbed(svc, result, attacker.Username, target.Username))
	}

	return cmd, handler
}

// raidResultEmbed renders a resolved raid. Fruit IDs in the loot are mapped
// back to catalog names where the catalog still knows them.
func raidResultEmbed(svc *Services, result *domain.RaidResult, attackerName, defenderName string) *discordgo.MessageEmbed {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s** ⚔️ **%s**\n", attackerName, defenderName)
	fmt.Fprintf(&b, "Power: %s vs %s\n", formatBerries(int64(result.AttackerPower)), formatBerries(int64(result.DefenderPower)))
	if result.Turns > 0 {
		fmt.Fprintf(&b, "Turns: %d\n", result.Turns)
	}

	title := "🏳️ Raid Repelled"
	color := 0xe74c3c
	if result.Victory {
		title = "🏴‍☠️ Raid Victorious"
		color = 0x2ecc71

		fmt.Fprintf(&b, "\n💰 Plundered **%s** berries\n", formatBerries(result.StolenBerries))
		for _, fruitID := range result.StolenFruits {
			name := fruitID
			if fruit, err := svc.Catalog.GetFruit(fruitID); err == nil {
				name = fruit.Name
			}
			fmt.Fprintf(&b, "🍈 Stole **%s**\n", name)
		}
	} else {
		b.WriteString("\nThe defenders held the deck. Nothing was taken.\n")
	}

	if tail := logTail(result.Log, raidLogTail); len(tail) > 0 {
		b.WriteString("\n")
		for _, line := range tail {
			fmt.Fprintf(&b, "> %s\n", line)
		}
	}

	return createEmbed(title, b.String(), color, "")
}

// logTail returns the last n lines of a combat log.
func logTail(log []string, n int) []string {
	if len(log) <= n {
		return log
	}
	return log[len(log)-n:]
}
