package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new session file
	LogFileRetentionCount = 9

	// ServiceName tags every log record
	ServiceName = "slotbot"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSlotBot     = "Starting SlotBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

// Log and error messages for store selection
const (
	LogMsgStoreOpened    = "Snapshot store opened"
	LogMsgOddsLoaded     = "Loaded odds table"
	ErrMsgOpenStore      = "failed to open %s store"
	ErrMsgUnknownBackend = "unknown storage backend %q"
	ErrMsgLoadOdds       = "failed to load odds table"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 15 * time.Second
)

// Log messages for the shutdown sequence
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgDiscordCloseFailed   = "Discord session close failed"
	LogMsgFlushingReveals      = "Flushing pending reveals"
	LogMsgRevealFlushFailed    = "Reveal flush incomplete"
	LogMsgFinalSave            = "Saving final snapshot"
	LogMsgFinalSaveFailed      = "Final snapshot save failed"
	LogMsgStoreCloseFailed     = "Store close failed"
	LogMsgServerStopped        = "Server stopped"
)
