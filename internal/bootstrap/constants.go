package bootstrap

// DirPermission is the standard permission for creating directories
const DirPermission = 0755

// Log messages for initialization
const (
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgSimulationLoaded       = "Simulation loaded"
	LogMsgGrabberSettingsLoaded  = "Grabber settings loaded"
)

// Error prefixes for initialization failures
const (
	ErrMsgCreateDeadLetterDir = "failed to create dead-letter directory"
	ErrMsgOpenDeadLetter      = "failed to open dead-letter file"
	ErrMsgLoadTuning          = "failed to load tuning"
	ErrMsgLoadCatalog         = "failed to load item catalog"
	ErrMsgLoadWorld           = "failed to load world"
	ErrMsgLoadActor           = "failed to load actor profile"
	ErrMsgLoadSettings        = "failed to load grabber settings"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgStoppingScheduler          = "Stopping day clock"
	LogMsgStoppingWorkerPool         = "Stopping simulation worker"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDeadLetterCloseFailed      = "Dead-letter file close failed"
	LogMsgServerStopped              = "Server stopped"
)
