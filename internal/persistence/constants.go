package persistence

// Backend names accepted by STORAGE_BACKEND
const (
	BackendNone     = "none"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
)

// Redis key suffixes, appended to the configured prefix
const (
	RedisKeyBalances    = "balances"
	RedisKeyDailyClaims = "daily_claims"

	// DefaultRedisKeyPrefix namespaces the snapshot hashes
	DefaultRedisKeyPrefix = "slotbot:"
)

// Error message formats
const (
	ErrMsgReadSnapshotFmt    = "%w: read %s: %v"
	ErrMsgDecodeSnapshotFmt  = "%w: decode %s: %v"
	ErrMsgEncodeSnapshotFmt  = "%w: encode snapshot: %v"
	ErrMsgWriteSnapshotFmt   = "%w: write %s: %v"
	ErrMsgRedisConnectFmt    = "%w: connect to redis at %s: %v"
	ErrMsgRedisLoadFmt       = "%w: load %s: %v"
	ErrMsgRedisSaveFmt       = "%w: save snapshot: %v"
	ErrMsgRedisBadBalanceFmt = "%w: balance %q for account %s"
)

// File permissions for the snapshot file
const (
	SnapshotFileMode = 0o600
	SnapshotDirMode  = 0o755
)
