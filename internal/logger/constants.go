package logger

// Log Level String Values
const (
	LogLevelTrace   = "trace"
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "deluxe-grabber"
	DefaultVersion     = "dev"
)

// EnvironmentDev is the environment tag used when none is configured
const EnvironmentDev = "dev"

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyRunID       = "run_id"
)
