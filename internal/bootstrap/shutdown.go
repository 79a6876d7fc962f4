package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SlotBot_Go/internal/persistence"
)

// Stopper is anything stopped with a deadline, like the HTTP server or the
// reveal worker.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Saver writes the final snapshot.
type Saver interface {
	Save(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server Stopper
	// Events disconnects live feed subscribers
	Events interface{ Stop() }
	// Discord closes the gateway session
	Discord interface{ Stop() error }
	// Reveals runs every pending reveal immediately
	Reveals interface {
		Pending() int
		Shutdown(ctx context.Context) error
	}
	// Scheduler and Pool stop the periodic saver
	Scheduler interface{ Stop() }
	Pool      interface{ Stop() }
	Economy   Saver
	Store     persistence.Store
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. Event feed, HTTP server and Discord session (stop accepting new bets)
// 2. Reveal worker (deliver every accepted bet's result now)
// 3. Periodic saver
// 4. Final snapshot, then the store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// open event streams would otherwise hold the server past its deadline
	if c.Events != nil {
		c.Events.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Discord != nil {
		if err := c.Discord.Stop(); err != nil {
			slog.Error(LogMsgDiscordCloseFailed, "error", err)
		}
	}

	if c.Reveals != nil {
		slog.Info(LogMsgFlushingReveals, "pending", c.Reveals.Pending())
		if err := c.Reveals.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRevealFlushFailed, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Economy != nil {
		slog.Info(LogMsgFinalSave)
		if err := c.Economy.Save(ctx); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err)
		}
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
