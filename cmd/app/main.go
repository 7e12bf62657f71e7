package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/osse101/GrandLineBot_Go/internal/catalog"
	"github.com/osse101/GrandLineBot_Go/internal/collection"
	"github.com/osse101/GrandLineBot_Go/internal/combat"
	"github.com/osse101/GrandLineBot_Go/internal/config"
	"github.com/osse101/GrandLineBot_Go/internal/cooldown"
	"github.com/osse101/GrandLineBot_Go/internal/database"
	"github.com/osse101/GrandLineBot_Go/internal/database/postgres"
	"github.com/osse101/GrandLineBot_Go/internal/discord"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/economy"
	"github.com/osse101/GrandLineBot_Go/internal/element"
	"github.com/osse101/GrandLineBot_Go/internal/gacha"
	"github.com/osse101/GrandLineBot_Go/internal/scheduler"
	"github.com/osse101/GrandLineBot_Go/internal/server"
	"github.com/osse101/GrandLineBot_Go/internal/worker"
)

// Connection pool and worker tuning
const (
	dbMaxConns   = 25
	dbMaxIdle    = 5 * time.Minute
	dbMaxLife    = 30 * time.Minute
	workerCount  = 4
	workerQueue  = 64
	shutdownWait = 10 * time.Second
)

func main() {
	initSchema := flag.Bool("init-schema", false, "apply the database schema before starting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *initSchema {
		if err := database.ApplySchema(context.Background(), pool); err != nil {
			slog.Error("Schema setup failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema applied")
	}

	// Game data
	catalogSvc, err := catalog.NewServiceFromFile(filepath.Join(cfg.GameConfigDir, "fruits.json"))
	if err != nil {
		slog.Error("Failed to load fruit catalog", "error", err)
		os.Exit(1)
	}

	matrix, err := element.LoadMatrix(filepath.Join(cfg.GameConfigDir, "elements.json"))
	if err != nil {
		slog.Error("Failed to load element matrix", "error", err)
		os.Exit(1)
	}

	gameCfg, err := config.LoadGameConfig(filepath.Join(cfg.GameConfigDir, "game.json"))
	if err != nil {
		slog.Error("Failed to load game config", "error", err)
		os.Exit(1)
	}

	// Repositories
	accountRepo := postgres.NewAccountRepository(pool)
	collectionRepo := postgres.NewCollectionRepository(pool)
	raidRepo := postgres.NewRaidRepository(pool)

	// Services
	cooldownSvc := cooldown.NewPostgresService(pool, cooldown.Config{
		DevMode: cfg.Environment == "dev" || cfg.Environment == "development",
		Cooldowns: map[string]time.Duration{
			domain.ActionPull:       gameCfg.Gacha.PullCooldown(),
			domain.ActionRaid:       gameCfg.Combat.RaidCooldown(),
			domain.ActionProtection: gameCfg.Combat.Protection(),
		},
	})
	collectionSvc := collection.NewService(collectionRepo, catalogSvc, gameCfg.Economy.DupBonusRate)
	economySvc := economy.NewService(accountRepo, collectionSvc, gameCfg.Economy)
	gachaSvc := gacha.NewService(collectionRepo, catalogSvc, collectionSvc, economySvc, cooldownSvc, gameCfg.Gacha)
	combatSvc := combat.NewService(raidRepo, accountRepo, collectionSvc, catalogSvc, matrix, cooldownSvc, gameCfg.Combat)

	// Passive income scheduler
	workerPool := worker.NewPool(workerCount, workerQueue)
	workerPool.Start()
	defer workerPool.Stop()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.IncomeTickInterval, worker.NewIncomeWorker(economySvc, collectionRepo))
	defer sched.Stop()

	// HTTP API
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, server.Services{
		Catalog:    catalogSvc,
		Collection: collectionSvc,
		Economy:    economySvc,
		Gacha:      gachaSvc,
		Combat:     combatSvc,
		Cooldown:   cooldownSvc,
	})

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Discord bot, skipped entirely when no token is deployed
	if cfg.DiscordToken != "" {
		bot, err := discord.New(discord.Config{
			Token: cfg.DiscordToken,
			AppID: cfg.DiscordAppID,
		}, &discord.Services{
			Catalog:    catalogSvc,
			Collection: collectionSvc,
			Economy:    economySvc,
			Gacha:      gachaSvc,
			Combat:     combatSvc,
		})
		if err != nil {
			slog.Error("Failed to create Discord bot", "error", err)
			os.Exit(1)
		}

		if err := bot.Start(); err != nil {
			slog.Error("Failed to start Discord bot", "error", err)
			os.Exit(1)
		}
		defer bot.Stop()

		forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
		if err := bot.RegisterCommands(forceUpdate); err != nil {
			// Don't exit - bot can still run if commands are already registered
			slog.Error("Failed to register commands", "error", err)
		}
	} else {
		slog.Info("DISCORD_TOKEN not set, running API only")
	}

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	slog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
