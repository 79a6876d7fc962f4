package postgres

// Table and column names
const (
	tableBalances = "account_balances"
	tableClaims   = "daily_claims"

	colAccountID = "account_id"
	colBalance   = "balance"
	colClaimDate = "claim_date"
)

// SQLAdvisoryLock serializes concurrent snapshot writers for the rest of the transaction
const SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

// snapshotLockKey is the advisory lock id guarding snapshot replacement
const snapshotLockKey int64 = 0x534c4f54 // "SLOT"

// insertChunkSize bounds rows per INSERT, well under postgres' 65535 bind parameter limit
const insertChunkSize = 1000

// Error Messages
const (
	ErrMsgMigrate         = "failed to migrate snapshot schema"
	ErrMsgTxManager       = "failed to create transaction manager"
	ErrMsgBuildQueryFmt   = "%w: build %s query: %v"
	ErrMsgQueryFmt        = "%w: query %s: %v"
	ErrMsgScanFmt         = "%w: scan %s row: %v"
	ErrMsgExecFmt         = "%w: write %s: %v"
	ErrMsgAcquireLockFmt  = "%w: acquire snapshot lock: %v"
)
