package config

import "time"

// Default file locations, relative to the working directory
const (
	DefaultWorldPath         = "configs/world.yaml"
	DefaultGrabberConfigPath = "configs/grabber.json"
	DefaultTuningPath        = "configs/tuning.yaml"
)

// Environment defaults
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "deluxe-grabber"
	DefaultVersion     = "dev"

	// DefaultDayInterval of zero disables the automatic day clock
	DefaultDayInterval time.Duration = 0

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "data/deadletter.jsonl"
)

// Grabber settings defaults
const (
	DefaultGrabberRange    = 10
	DefaultGlobalForageMap = "Farm"
)

// Log messages
const (
	LogMsgGrabberConfigCreated = "Grabber settings not found, writing defaults"
	LogMsgGrabberConfigSaved   = "Grabber settings saved"
)
