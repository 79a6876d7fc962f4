package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/osse101/SlotBot_Go/internal/testing/leaktest"
	"github.com/osse101/SlotBot_Go/internal/testing/pgtest"
)

func TestMain(m *testing.M) {
	pgtest.Main(m)
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz", 0, 0, 0)

	require.Error(t, err)
	assert.ErrorContains(t, err, ErrMsgFailedToParseConnString)
}

func TestNewPool_AppliesDefaults(t *testing.T) {
	dsn := pgtest.ConnString(t)

	pool, err := NewPool(context.Background(), dsn, 0, 0, 0)
	require.NoError(t, err)
	defer pool.Close()

	cfg := pool.Config()
	assert.Equal(t, int32(DefaultMaxConnections), cfg.MaxConns)
	assert.Equal(t, DefaultMaxConnIdleTime, cfg.MaxConnIdleTime)
	assert.Equal(t, DefaultMaxConnLifetime, cfg.MaxConnLifetime)
}

func TestPool_ParallelQueriesReleaseConnections(t *testing.T) {
	dsn := pgtest.ConnString(t)
	ctx := context.Background()

	pool, err := NewPool(ctx, dsn, 4, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)

	// more callers than connections, so some of them queue in Acquire
	g, gctx := errgroup.WithContext(ctx)
	for n := range 16 {
		g.Go(func() error {
			var echoed int
			if err := pool.QueryRow(gctx, "SELECT $1::int", n).Scan(&echoed); err != nil {
				return err
			}
			if echoed != n {
				t.Errorf("query %d echoed %d", n, echoed)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Zero(t, pool.Stat().AcquiredConns())
	checker.Check(2)
}

func TestMigratePostgres_Idempotent(t *testing.T) {
	dsn := pgtest.ConnString(t)
	ctx := context.Background()

	pool, err := NewPool(ctx, dsn, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	require.NoError(t, MigratePostgres(ctx, db))
	require.NoError(t, MigratePostgres(ctx, db))

	_, err = pool.Exec(ctx, "INSERT INTO account_balances (account_id, balance) VALUES ('x', -1)")
	assert.Error(t, err, "negative balances violate the check constraint")
}

func TestMigrateSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, MigrateSQLite(ctx, db))
	require.NoError(t, MigrateSQLite(ctx, db), "second run is a no-op")

	var tables []string
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('account_balances', 'daily_claims') ORDER BY name")
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"account_balances", "daily_claims"}, tables)
}
