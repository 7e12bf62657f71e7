package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GrandLineBot_Go/internal/catalog"
	"github.com/osse101/GrandLineBot_Go/internal/collection"
	"github.com/osse101/GrandLineBot_Go/internal/combat"
	"github.com/osse101/GrandLineBot_Go/internal/economy"
	"github.com/osse101/GrandLineBot_Go/internal/gacha"
)

// Services bundles the domain services the slash commands call.
// The bot runs in the same process as the API server, so commands talk to
// the services directly rather than going through HTTP.
type Services struct {
	Catalog    catalog.Service
	Collection collection.Service
	Economy    economy.Service
	Gacha      gacha.Service
	Combat     combat.Service
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Services *Services
	AppID    string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
}

// New creates a new Discord bot with all slash commands registered locally.
// RegisterCommands must still be called to sync them with Discord.
func New(cfg Config, services *Services) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	b := &Bot{
		Session:  s,
		Services: services,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
	}

	b.Registry.Register(PingCommand())
	b.Registry.Register(PullCommand())
	b.Registry.Register(RaidCommand())
	b.Registry.Register(ProfileCommand())
	b.Registry.Register(CollectionCommand())
	b.Registry.Register(LeaderboardCommand())
	b.Registry.Register(FruitsCommand())

	return b, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Services)
	}
}
