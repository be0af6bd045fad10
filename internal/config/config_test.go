package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "SERVICE_NAME", "VERSION",
	"WORLD_PATH", "GRABBER_CONFIG_PATH", "TUNING_PATH", "CATALOG_PATH", "DAY_INTERVAL",
	"DAY_INTERVAL_SECONDS", "EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY", "EVENT_DEADLETTER_PATH",
}

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultWorldPath, cfg.WorldPath)
		assert.Equal(t, DefaultGrabberConfigPath, cfg.GrabberConfigPath)
		assert.Empty(t, cfg.CatalogPath)
		assert.Zero(t, cfg.DayInterval)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "TRACE")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("WORLD_PATH", "/data/world.yaml")
		t.Setenv("DAY_INTERVAL", "10m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "trace", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "/data/world.yaml", cfg.WorldPath)
		assert.Equal(t, 10*time.Minute, cfg.DayInterval)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("rejects values outside the allowed set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("LOG_FORMAT", "xml")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "LogFormat")
	})

	t.Run("rejects an out of range port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "70000")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Second))
	})

	t.Run("parses valid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "90s")
		assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Second))
	})

	t.Run("returns default for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "soon")
		assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Second))
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		clearEnvVars(t)

		_, err := ValidateEnvWithWarnings()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required environment variables")
	})

	t.Run("insecure defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
		t.Setenv("DAY_INTERVAL_SECONDS", "60")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "API_KEY")
		assert.Contains(t, warnings[1], "DAY_INTERVAL")
	})
}
