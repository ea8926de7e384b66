// ABOUTME: This file tests configuration loading with environment variables
// ABOUTME: Covers defaults, overrides, and validation failures
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv blanks every configuration variable so a value leaking in
// from the runner environment cannot mask a default.
func clearConfigEnv(t *testing.T) {
	t.Helper()

	keys := []string{
		"SERVER_PORT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"HTTP_TIMEOUT", "HTTP_USER_AGENT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE", "DB_MAX_CONNS",
		"REDIS_ENABLED", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_SEEN_TTL",
		"INGESTION_INTERVAL", "INGESTION_RUN_ON_START", "INGESTION_FETCH_TIMEOUT",
		"INGESTION_HACKER_NEWS_BASE_URL", "INGESTION_DEV_TO_BASE_URL", "INGESTION_REDDIT_BASE_URL",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Run("should load defaults when no environment is set", func(t *testing.T) {
		clearConfigEnv(t)

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9300, config.Server.Port)
		assert.Equal(t, 30*time.Second, config.Server.ShutdownTimeout)
		assert.Equal(t, 30*time.Second, config.HTTP.Timeout)
		assert.Equal(t, "localhost", config.Database.Host)
		assert.Equal(t, 5432, config.Database.Port)
		assert.Equal(t, "knowledge_ingestor", config.Database.User)
		assert.Equal(t, "knowledge", config.Database.Name)
		assert.Equal(t, "prefer", config.Database.SSLMode)
		assert.Equal(t, int32(10), config.Database.MaxConns)
		assert.False(t, config.Redis.Enabled)
		assert.Equal(t, 24*time.Hour, config.Redis.SeenTTL)
		assert.Equal(t, 30*time.Minute, config.Ingestion.Interval)
		assert.True(t, config.Ingestion.RunOnStart)
		assert.Equal(t, 2*time.Minute, config.Ingestion.FetchTimeout)
		assert.Empty(t, config.Ingestion.HackerNewsBaseURL)
	})
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Run("should override server and ingestion settings", func(t *testing.T) {
		clearConfigEnv(t)

		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("INGESTION_INTERVAL", "5m")
		t.Setenv("INGESTION_RUN_ON_START", "false")
		t.Setenv("INGESTION_HACKER_NEWS_BASE_URL", "http://localhost:9999/v0")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, 5*time.Minute, config.Ingestion.Interval)
		assert.False(t, config.Ingestion.RunOnStart)
		assert.Equal(t, "http://localhost:9999/v0", config.Ingestion.HackerNewsBaseURL)
	})

	t.Run("should override database and redis settings", func(t *testing.T) {
		clearConfigEnv(t)

		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("REDIS_ENABLED", "true")
		t.Setenv("REDIS_ADDR", "redis.internal:6379")
		t.Setenv("REDIS_SEEN_TTL", "1h")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", config.Database.Host)
		assert.Equal(t, 5433, config.Database.Port)
		assert.Equal(t, "secret", config.Database.Password)
		assert.True(t, config.Redis.Enabled)
		assert.Equal(t, "redis.internal:6379", config.Redis.Addr)
		assert.Equal(t, time.Hour, config.Redis.SeenTTL)
	})
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Run("should reject a non-numeric port", func(t *testing.T) {
		clearConfigEnv(t)

		t.Setenv("SERVER_PORT", "not-a-port")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("should reject an out-of-range port", func(t *testing.T) {
		clearConfigEnv(t)

		t.Setenv("SERVER_PORT", "70000")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})

	t.Run("should reject a malformed duration", func(t *testing.T) {
		clearConfigEnv(t)

		t.Setenv("INGESTION_INTERVAL", "soon")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "INGESTION_INTERVAL")
	})

	t.Run("should reject a non-boolean flag", func(t *testing.T) {
		clearConfigEnv(t)

		t.Setenv("REDIS_ENABLED", "maybe")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REDIS_ENABLED")
	})

	t.Run("should reject a non-positive fetch timeout", func(t *testing.T) {
		clearConfigEnv(t)

		t.Setenv("INGESTION_FETCH_TIMEOUT", "-1s")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch timeout")
	})
}
