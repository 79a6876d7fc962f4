// Package pgtest gives a test binary one throwaway Postgres container.
//
// Call Main from TestMain and ConnString from each integration test. Tests
// skip rather than fail under -short or when no docker daemon is reachable.
package pgtest

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	Image    = "postgres:15-alpine"
	Database = "slotbot"
	User     = "testuser"
	Password = "testpass"
)

var connString string

// Main starts the container, runs m and tears the container down.
func Main(m *testing.M) {
	flag.Parse()

	stop := func() {}
	if !testing.Short() {
		connString, stop = start(context.Background())
	}

	code := m.Run()
	stop()
	os.Exit(code)
}

// ConnString returns the container DSN, skipping t when there is none.
func ConnString(t testing.TB) string {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	if connString == "" {
		t.Skip("integration test skipped: no postgres container")
	}
	return connString
}

func start(ctx context.Context) (dsn string, stop func()) {
	stop = func() {}
	// testcontainers panics when docker is missing entirely
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("postgres container unavailable", "panic", r)
			dsn, stop = "", func() {}
		}
	}()

	c, err := tcpostgres.Run(ctx, Image,
		tcpostgres.WithDatabase(Database),
		tcpostgres.WithUsername(User),
		tcpostgres.WithPassword(Password),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		slog.Warn("postgres container failed to start", "error", err)
		return "", stop
	}

	terminate := func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			slog.Warn("postgres container terminate failed", "error", err)
		}
	}

	dsn, err = c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		slog.Warn("postgres container has no connection string", "error", err)
		terminate()
		return "", stop
	}
	return dsn, terminate
}
