package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/SlotBot_Go/internal/persistence"
)

// Validate checks ranges and that the selected storage backend has what it
// needs. Every problem is reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidPortFmt, c.Port))
	}
	if strings.TrimSpace(c.CommandPrefix) == "" {
		errs = append(errs, errors.New(ErrMsgEmptyPrefix))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf(ErrMsgInvalidLogFormat, c.LogFormat))
	}

	if err := c.validateBackend(); err != nil {
		errs = append(errs, err)
	}

	positive := []struct {
		name  string
		value int64
	}{
		{"STARTING_BALANCE", c.StartingBalance},
		{"DAILY_AMOUNT", c.DailyAmount},
		{"BET_COOLDOWN", int64(c.BetCooldown)},
		{"REVEAL_DELAY", int64(c.RevealDelay)},
		{"SAVE_INTERVAL", int64(c.SaveInterval)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf(ErrMsgNonPositiveFmt, p.name, p.value))
		}
	}

	return errors.Join(errs...)
}

func (c *Config) validateBackend() error {
	backend := strings.ToLower(c.StorageBackend)

	var missing string
	switch backend {
	case persistence.BackendNone:
	case persistence.BackendFile:
		if c.DataFile == "" {
			missing = "DATA_FILE"
		}
	case persistence.BackendPostgres:
		if c.DatabaseURL == "" {
			missing = "DATABASE_URL"
		}
	case persistence.BackendSQLite:
		if c.SQLitePath == "" {
			missing = "SQLITE_PATH"
		}
	case persistence.BackendRedis:
		if c.RedisAddr == "" {
			missing = "REDIS_ADDR"
		}
	default:
		return fmt.Errorf(ErrMsgUnknownBackendFmt, c.StorageBackend)
	}

	if missing != "" {
		return fmt.Errorf(ErrMsgMissingForBackend, missing, backend)
	}
	return nil
}

// Warnings lists non-fatal issues worth logging at startup, like disabled
// features or example values copied from .env.example.
func (c *Config) Warnings() []string {
	var warnings []string

	switch c.DiscordToken {
	case "":
		warnings = append(warnings, WarnNoDiscordToken)
	case ExampleDiscordToken:
		warnings = append(warnings, WarnExampleToken)
	}

	if c.AdminUserID == "" {
		warnings = append(warnings, WarnNoAdmin)
	}

	switch c.APIKey {
	case "":
		warnings = append(warnings, WarnNoAPIKey)
	case ExampleAPIKey:
		warnings = append(warnings, WarnExampleAPIKey)
	}

	if strings.EqualFold(c.StorageBackend, persistence.BackendNone) {
		warnings = append(warnings, WarnEphemeralBackend)
	}

	return warnings
}
