package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgQueueFull is logged when TryEnqueue drops a job
const LogMsgQueueFull = "Worker queue full, job dropped"

// ============================================================================
// Log Messages - Reveal Worker
// ============================================================================

// Log messages for reveal worker operations
const (
	LogMsgRevealScheduled      = "Scheduling reveal"
	LogMsgRevealLateSchedule   = "Reveal scheduled after shutdown, running now"
	LogMsgRevealShutdown       = "Shutting down reveal worker"
	LogMsgRevealFlushing       = "Flushing pending reveals"
	LogMsgRevealShutdownDone   = "Reveal worker shutdown complete"
	LogMsgRevealShutdownExpire = "Reveal worker shutdown timeout, some reveals may still be running"
)

// ============================================================================
// Log Messages - Snapshot Job
// ============================================================================

// LogMsgSnapshotTick is logged at debug level for every periodic save
const LogMsgSnapshotTick = "Periodic snapshot save"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
