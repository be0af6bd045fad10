package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the service configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string `validate:"required"` // API key for authentication
	LogLevel    string `validate:"oneof=trace debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	WorldPath         string `validate:"required"`
	GrabberConfigPath string `validate:"required"`
	TuningPath        string
	CatalogPath       string // empty means the built-in catalog

	// DayInterval advances the world clock automatically when positive
	DayInterval time.Duration `validate:"gte=0"`

	// Event publisher retries and dead-letter file
	EventMaxRetries     int           `validate:"gte=0,lte=20"`
	EventRetryDelay     time.Duration `validate:"gte=0"`
	EventDeadLetterPath string        `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:            getEnv("API_KEY", ""),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:       getEnv("SERVICE_NAME", DefaultServiceName),
		Version:           getEnv("VERSION", DefaultVersion),
		WorldPath:         getEnv("WORLD_PATH", DefaultWorldPath),
		GrabberConfigPath: getEnv("GRABBER_CONFIG_PATH", DefaultGrabberConfigPath),
		TuningPath:        getEnv("TUNING_PATH", DefaultTuningPath),
		CatalogPath:       getEnv("CATALOG_PATH", ""),
		DayInterval:       getEnvAsDuration("DAY_INTERVAL", DefaultDayInterval),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
