// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides validation and defaults for all pipeline components
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	HTTP      HTTPConfig      `json:"http"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	Ingestion IngestionConfig `json:"ingestion"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type HTTPConfig struct {
	// Timeout bounds every upstream feed call; a timed-out adapter is
	// skipped for the run and reconciled next tick.
	Timeout   time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"30s"`
	UserAgent string        `json:"user_agent" env:"HTTP_USER_AGENT"`
}

type DatabaseConfig struct {
	Host     string `json:"host" env:"DB_HOST" default:"localhost"`
	Port     int    `json:"port" env:"DB_PORT" default:"5432"`
	User     string `json:"user" env:"DB_USER" default:"knowledge_ingestor"`
	Password string `json:"-" env:"DB_PASSWORD"`
	Name     string `json:"name" env:"DB_NAME" default:"knowledge"`
	SSLMode  string `json:"ssl_mode" env:"DB_SSL_MODE" default:"prefer"`
	MaxConns int32  `json:"max_conns" env:"DB_MAX_CONNS" default:"10"`
}

type RedisConfig struct {
	// Enabled switches the recently-seen cache on. The pipeline is fully
	// functional without it; the cache only saves store lookups.
	Enabled  bool          `json:"enabled" env:"REDIS_ENABLED" default:"false"`
	Addr     string        `json:"addr" env:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `json:"-" env:"REDIS_PASSWORD"`
	SeenTTL  time.Duration `json:"seen_ttl" env:"REDIS_SEEN_TTL" default:"24h"`
}

type IngestionConfig struct {
	// Interval is the scheduler tick. Runs are stateless between ticks,
	// so the interval is purely a deployment parameter.
	Interval   time.Duration `json:"interval" env:"INGESTION_INTERVAL" default:"30m"`
	RunOnStart bool          `json:"run_on_start" env:"INGESTION_RUN_ON_START" default:"true"`
	// FetchTimeout bounds one adapter's whole fetch, including the
	// per-item detail calls some sources need.
	FetchTimeout      time.Duration `json:"fetch_timeout" env:"INGESTION_FETCH_TIMEOUT" default:"2m"`
	HackerNewsBaseURL string        `json:"hacker_news_base_url" env:"INGESTION_HACKER_NEWS_BASE_URL"`
	DevToBaseURL      string        `json:"dev_to_base_url" env:"INGESTION_DEV_TO_BASE_URL"`
	RedditBaseURL     string        `json:"reddit_base_url" env:"INGESTION_REDDIT_BASE_URL"`
}

func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	var err error

	if config.Server.Port, err = getEnvInt("SERVER_PORT", 9300); err != nil {
		return err
	}

	if config.Server.ShutdownTimeout, err = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return err
	}

	if config.Server.ReadTimeout, err = getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second); err != nil {
		return err
	}

	if config.Server.WriteTimeout, err = getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second); err != nil {
		return err
	}

	if config.HTTP.Timeout, err = getEnvDuration("HTTP_TIMEOUT", 30*time.Second); err != nil {
		return err
	}

	config.HTTP.UserAgent = os.Getenv("HTTP_USER_AGENT")

	config.Database.Host = getEnvOrDefault("DB_HOST", "localhost")

	if config.Database.Port, err = getEnvInt("DB_PORT", 5432); err != nil {
		return err
	}

	config.Database.User = getEnvOrDefault("DB_USER", "knowledge_ingestor")
	config.Database.Password = os.Getenv("DB_PASSWORD")
	config.Database.Name = getEnvOrDefault("DB_NAME", "knowledge")
	config.Database.SSLMode = getEnvOrDefault("DB_SSL_MODE", "prefer")

	maxConns, err := getEnvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return err
	}

	config.Database.MaxConns = int32(maxConns)

	if config.Redis.Enabled, err = getEnvBool("REDIS_ENABLED", false); err != nil {
		return err
	}

	config.Redis.Addr = getEnvOrDefault("REDIS_ADDR", "localhost:6379")
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")

	if config.Redis.SeenTTL, err = getEnvDuration("REDIS_SEEN_TTL", 24*time.Hour); err != nil {
		return err
	}

	if config.Ingestion.Interval, err = getEnvDuration("INGESTION_INTERVAL", 30*time.Minute); err != nil {
		return err
	}

	if config.Ingestion.RunOnStart, err = getEnvBool("INGESTION_RUN_ON_START", true); err != nil {
		return err
	}

	if config.Ingestion.FetchTimeout, err = getEnvDuration("INGESTION_FETCH_TIMEOUT", 2*time.Minute); err != nil {
		return err
	}

	config.Ingestion.HackerNewsBaseURL = os.Getenv("INGESTION_HACKER_NEWS_BASE_URL")
	config.Ingestion.DevToBaseURL = os.Getenv("INGESTION_DEV_TO_BASE_URL")
	config.Ingestion.RedditBaseURL = os.Getenv("INGESTION_REDDIT_BASE_URL")

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}
