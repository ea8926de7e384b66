package config

import (
	"fmt"
)

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %v", config.HTTP.Timeout)
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}

	if config.Database.Port <= 0 || config.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", config.Database.Port)
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if config.Database.MaxConns <= 0 {
		return fmt.Errorf("database max conns must be positive: %d", config.Database.MaxConns)
	}

	if config.Redis.Enabled && config.Redis.Addr == "" {
		return fmt.Errorf("redis addr cannot be empty when REDIS_ENABLED is true")
	}

	if config.Redis.SeenTTL <= 0 {
		return fmt.Errorf("redis seen TTL must be positive: %v", config.Redis.SeenTTL)
	}

	if config.Ingestion.Interval <= 0 {
		return fmt.Errorf("ingestion interval must be positive: %v", config.Ingestion.Interval)
	}

	if config.Ingestion.FetchTimeout <= 0 {
		return fmt.Errorf("ingestion fetch timeout must be positive: %v", config.Ingestion.FetchTimeout)
	}

	return nil
}
