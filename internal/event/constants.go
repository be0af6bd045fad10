package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// DefaultMaxRetries is the number of retry attempts before dead-lettering
	DefaultMaxRetries = 5

	// DefaultRetryDelay is the base delay between retries
	DefaultRetryDelay = 2 * time.Second
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgPublishFailed      = "Failed to publish event, initiating async retry"
	LogMsgRetrySucceeded     = "Successfully published event after retry"
	LogMsgRetryFailed        = "Retry failed"
	LogMsgDeadLettered       = "Event written to dead letter queue"
	LogMsgDeadLetterFailed   = "Failed to write to dead letter file"
	LogMsgNoDeadLetterWriter = "Event dropped, no dead letter writer configured"
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns the exponential backoff delay for an attempt:
// baseDelay * 2^(attempt-1)
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
