package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Discord
	DiscordToken   string `env:"DISCORD_TOKEN"`
	DiscordAppID   string `env:"DISCORD_APP_ID"`
	DiscordGuildID string `env:"DISCORD_GUILD_ID"` // empty registers slash commands globally
	CommandPrefix  string `env:"COMMAND_PREFIX" envDefault:".slots"`
	AdminUserID    string `env:"ADMIN_USER_ID"`

	// HTTP
	Port           int      `env:"PORT" envDefault:"3000"`
	APIKey         string   `env:"API_KEY"` // empty disables /api/v1
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimit      int      `env:"RATE_LIMIT" envDefault:"1000"` // per IP per 5 minutes on /api/v1

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	// Storage
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	DataFile       string `env:"DATA_FILE" envDefault:"data.json"`
	DatabaseURL    string `env:"DATABASE_URL"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"slotbot.db"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"slotbot:"`

	// Economy
	OddsFile        string        `env:"ODDS_FILE"`
	StartingBalance int64         `env:"STARTING_BALANCE" envDefault:"1000"`
	BetCooldown     time.Duration `env:"BET_COOLDOWN" envDefault:"5s"`
	RevealDelay     time.Duration `env:"REVEAL_DELAY" envDefault:"3s"`
	DailyAmount     int64         `env:"DAILY_AMOUNT" envDefault:"50"`
	SaveInterval    time.Duration `env:"SAVE_INTERVAL" envDefault:"5m"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DiscordEnabled reports whether a bot token is configured
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// APIEnabled reports whether the authenticated API should be mounted
func (c *Config) APIEnabled() bool {
	return c.APIKey != ""
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
