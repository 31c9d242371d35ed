package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atreus-labs/wardenbot/internal/config"
	"github.com/atreus-labs/wardenbot/internal/database"
	"github.com/atreus-labs/wardenbot/internal/database/postgres"
	"github.com/atreus-labs/wardenbot/internal/discord"
	"github.com/atreus-labs/wardenbot/internal/giveaway"
	"github.com/atreus-labs/wardenbot/internal/leveling"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/scheduler"
	"github.com/atreus-labs/wardenbot/internal/server"
	"github.com/atreus-labs/wardenbot/internal/settings"
	"github.com/atreus-labs/wardenbot/internal/worker"
)

const (
	workerCount  = 4
	workerQueue  = 16
	pingInterval = time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     logger.DefaultVersion,
		Environment: cfg.Environment,
	})
	log := slog.Default()

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		log.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(context.Background(), cfg.GetDBConnString(), database.DefaultPoolConfig())
	if err != nil {
		log.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	giveawayRepo := postgres.NewGiveawayRepository(pool)
	levelingRepo := postgres.NewLevelingRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	// Services
	settingsSvc := settings.NewService(settingsRepo)
	if err := settingsSvc.Warm(context.Background()); err != nil {
		log.Warn("Settings cache warm failed, continuing with lazy loads", "error", err)
	}

	levelingSvc := leveling.NewService(levelingRepo, settingsSvc, leveling.Defaults{
		Cooldown: cfg.XPCooldown,
		MinXP:    cfg.XPMin,
		MaxXP:    cfg.XPMax,
	}, cfg.ExcludedChannels)

	// The bot session is created before the giveaway service because the
	// messenger wraps it.
	registry, bot, messenger, err := buildBot(cfg, levelingSvc, settingsSvc)
	if err != nil {
		log.Error("Bot setup failed", "error", err)
		os.Exit(1)
	}

	giveawaySvc := giveaway.NewService(giveawayRepo, messenger, messenger, cfg.RoleWeights, cfg.EntryRefreshDelay)
	registerCommands(registry, giveawaySvc, levelingSvc, settingsSvc)

	// Background workers
	workerPool := worker.NewPool(workerCount, workerQueue)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.GiveawayCheckInterval, worker.NewGiveawayWorker(giveawaySvc))

	schedules, err := config.LoadSchedules(cfg.ScheduleFile)
	if err != nil {
		log.Error("Ping schedule load failed", "error", err)
		os.Exit(1)
	}
	if len(schedules) > 0 {
		sched.Schedule(pingInterval, worker.NewPingWorker(messenger, schedules))
	}

	dailyReset := worker.NewDailyResetWorker(levelingRepo, messenger, cfg.DailyAnnounceMap)
	if cfg.DailyTopRoleID != "" {
		dailyReset.WithTopRole(messenger, cfg.DailyTopRoleID)
	}
	dailyReset.Start()

	// Metrics and health server
	srv := server.New(cfg.Port, pool)
	go func() {
		if err := srv.Start(); err != nil {
			log.Error("HTTP server failed", "error", err)
		}
	}()

	if err := bot.Start(context.Background()); err != nil {
		log.Error("Bot start failed", "error", err)
		os.Exit(1)
	}
	log.Info("All systems running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop producing new work before draining what is in flight.
	sched.Stop()
	workerPool.Stop()
	if err := dailyReset.Shutdown(ctx); err != nil {
		log.Warn("Daily reset worker shutdown timed out", "error", err)
	}
	giveawaySvc.Stop()
	bot.Stop()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("HTTP server shutdown failed", "error", err)
	}

	log.Info("Shutdown complete")
}

func buildBot(cfg *config.Config, levelingSvc leveling.Service, settingsSvc settings.Service) (*discord.CommandRegistry, *discord.Bot, *discord.Messenger, error) {
	registry := discord.NewCommandRegistry()

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, registry, nil)
	if err != nil {
		return nil, nil, nil, err
	}

	messenger := discord.NewMessenger(bot.Session)
	bot.SetListeners(discord.NewListeners(levelingSvc, settingsSvc, messenger, cfg.WelcomeChannelID, cfg.LevelupChannelID))

	return registry, bot, messenger, nil
}

func registerCommands(registry *discord.CommandRegistry, giveawaySvc giveaway.Service, levelingSvc leveling.Service, settingsSvc settings.Service) {
	registry.Register(discord.PingCommand())
	registry.Register(discord.GiveawayStartCommand(giveawaySvc))
	registry.Register(discord.GiveawayEndCommand(giveawaySvc))
	registry.Register(discord.GiveawayRerollCommand(giveawaySvc))
	registry.Register(discord.GiveawayListCommand(giveawaySvc))
	registry.Register(discord.RankCommand(levelingSvc))
	registry.Register(discord.LeaderboardCommand(levelingSvc))
	registry.Register(discord.ConfigCommand(settingsSvc))
	registry.Register(discord.HelpCommand(registry))

	registry.RegisterComponent(discord.ComponentGiveawayEnter, discord.GiveawayEnterComponent(giveawaySvc))
}
