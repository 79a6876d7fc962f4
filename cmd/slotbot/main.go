package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SlotBot_Go/internal/bootstrap"
	"github.com/osse101/SlotBot_Go/internal/config"
	"github.com/osse101/SlotBot_Go/internal/discord"
	"github.com/osse101/SlotBot_Go/internal/game"
	"github.com/osse101/SlotBot_Go/internal/scheduler"
	"github.com/osse101/SlotBot_Go/internal/server"
	"github.com/osse101/SlotBot_Go/internal/sse"
	"github.com/osse101/SlotBot_Go/internal/worker"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// Snapshots are rare; one worker and a short queue are plenty
const (
	snapshotWorkers   = 1
	snapshotQueueSize = 4
)

// @title SlotBot API
// @version 1.0
// @description Slot machine economy behind the chat bot.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	os.Exit(run())
}

// run wires the bot together and blocks until a signal arrives. Returning
// instead of exiting lets the deferred log file close run on every path.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	logFile, err := bootstrap.SetupLogger(cfg, version)
	if err != nil {
		slog.Error("Failed to setup logger", "error", err)
		return 1
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open snapshot store", "error", err)
		return 1
	}

	hub := sse.NewHub()
	hub.Start()

	reveals := worker.NewRevealWorker()
	state, err := bootstrap.NewEconomy(ctx, cfg, store, reveals, game.WithPublisher(hub))
	if err != nil {
		slog.Error("Failed to build economy", "error", err)
		shutdown(bootstrap.ShutdownComponents{Events: hub, Store: store})
		return 1
	}

	pool := worker.NewPool(snapshotWorkers, snapshotQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.SaveInterval, worker.NewSnapshotJob(state))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		Events:         hub,
	}, state)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			stop()
		}
	}()

	components := bootstrap.ShutdownComponents{
		Server:    srv,
		Events:    hub,
		Reveals:   reveals,
		Scheduler: sched,
		Pool:      pool,
		Economy:   state,
		Store:     store,
	}

	if cfg.DiscordEnabled() {
		bot, err := discord.New(discord.Config{
			Token:   cfg.DiscordToken,
			AppID:   cfg.DiscordAppID,
			GuildID: cfg.DiscordGuildID,
			Prefix:  cfg.CommandPrefix,
		}, state)
		if err != nil {
			slog.Error("Failed to create bot", "error", err)
			shutdown(components)
			return 1
		}
		// Handlers outlive the signal so in-flight bets can finish during shutdown
		if err := bot.Start(context.WithoutCancel(ctx)); err != nil {
			slog.Error("Bot failed", "error", err)
			shutdown(components)
			return 1
		}
		components.Discord = bot
	} else {
		slog.Warn("DISCORD_TOKEN not set, running without the chat bot")
	}

	<-ctx.Done()

	shutdown(components)
	return 0
}

func shutdown(c bootstrap.ShutdownComponents) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, c)
}
