package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/osse101/SlotBot_Go/internal/config"
	"github.com/osse101/SlotBot_Go/internal/database"
	"github.com/osse101/SlotBot_Go/internal/database/postgres"
	"github.com/osse101/SlotBot_Go/internal/database/sqlite"
	"github.com/osse101/SlotBot_Go/internal/game"
	"github.com/osse101/SlotBot_Go/internal/persistence"
	"github.com/osse101/SlotBot_Go/internal/slots"
)

// OpenStore selects the snapshot store named by STORAGE_BACKEND.
func OpenStore(ctx context.Context, cfg *config.Config) (persistence.Store, error) {
	backend := strings.ToLower(cfg.StorageBackend)

	var (
		store persistence.Store
		err   error
	)
	switch backend {
	case persistence.BackendNone:
		store = persistence.Nop{}
	case persistence.BackendFile:
		store = persistence.NewFileStore(cfg.DataFile)
	case persistence.BackendPostgres:
		store, err = openPostgres(ctx, cfg.DatabaseURL)
	case persistence.BackendSQLite:
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
	case persistence.BackendRedis:
		store, err = persistence.NewRedisStore(ctx, persistence.RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisKeyPrefix,
		})
	default:
		return nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.StorageBackend)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenStore+": %w", backend, err)
	}

	slog.Info(LogMsgStoreOpened, "backend", backend)
	return store, nil
}

func openPostgres(ctx context.Context, url string) (persistence.Store, error) {
	pool, err := database.NewPool(ctx, url, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	store, err := postgres.New(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// NewEconomy builds the game state from configuration and restores the last
// snapshot. A failed restore is logged by Restore and the bot starts empty.
func NewEconomy(ctx context.Context, cfg *config.Config, store persistence.Store, reveals game.RevealScheduler, opts ...game.Option) (*game.EconomyState, error) {
	if cfg.OddsFile != "" {
		table, err := slots.LoadTable(cfg.OddsFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgLoadOdds, err)
		}
		slog.Info(LogMsgOddsLoaded, "file", cfg.OddsFile, "symbols", len(table.Entries()))
		opts = append(opts, game.WithTable(table))
	}

	state := game.New(game.Config{
		StartingBalance: cfg.StartingBalance,
		BetCooldown:     cfg.BetCooldown,
		RevealDelay:     cfg.RevealDelay,
		DailyAmount:     cfg.DailyAmount,
		AdminID:         cfg.AdminUserID,
	}, store, reveals, opts...)

	_ = state.Restore(ctx)
	return state, nil
}
