package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Day Worker
// ============================================================================

// Log messages for day clock operations
const (
	LogMsgDayStarting  = "Day boundary starting"
	LogMsgDayCompleted = "Day boundary completed"
	LogMsgDayFailed    = "Day boundary failed"
)
