package config

// Default values, mirrored in the envDefault tags
const (
	DefaultPort           = 3000
	DefaultCommandPrefix  = ".slots"
	DefaultStorageBackend = "file"
	DefaultDataFile       = "data.json"
	DefaultSQLitePath     = "slotbot.db"
	DefaultRedisAddr      = "localhost:6379"
	DefaultLogDir         = "logs"
)

// Example values from .env.example that must not reach production
const (
	ExampleAPIKey       = "generate_with_openssl_rand_hex_32"
	ExampleDiscordToken = "your_discord_bot_token"
)

// Error messages
const (
	ErrMsgParseEnv          = "failed to parse environment"
	ErrMsgInvalidPortFmt    = "invalid PORT value %d: must be between 1 and 65535"
	ErrMsgUnknownBackendFmt = "unknown STORAGE_BACKEND %q: expected one of none, file, postgres, sqlite, redis"
	ErrMsgMissingForBackend = "%s must be set when STORAGE_BACKEND=%s"
	ErrMsgNonPositiveFmt    = "%s must be positive, got %v"
	ErrMsgInvalidLogFormat  = "invalid LOG_FORMAT %q: expected json or text"
	ErrMsgEmptyPrefix       = "COMMAND_PREFIX must not be empty"
)

// Warnings returned by Warnings
const (
	WarnNoDiscordToken   = "DISCORD_TOKEN is not set - the Discord bot is disabled"
	WarnExampleToken     = "DISCORD_TOKEN appears to be the example value"
	WarnNoAdmin          = "ADMIN_USER_ID is not set - admin credit is disabled"
	WarnExampleAPIKey    = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnNoAPIKey         = "API_KEY is not set - the /api/v1 routes are disabled"
	WarnEphemeralBackend = "STORAGE_BACKEND=none - balances are lost on restart"
)
