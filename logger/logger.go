// ABOUTME: This file provides the slog-based logger configuration
// ABOUTME: JSON output with optional OTel export via the otelslog bridge
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the package-level default, replaced during bootstrap.
var Logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// LoggerConfig represents logger configuration.
type LoggerConfig struct {
	Level       string `env:"LOG_LEVEL" default:"info"`
	ServiceName string `env:"SERVICE_NAME" default:"knowledge-ingestor"`
}

// LoadLoggerConfigFromEnv loads configuration from environment variables.
func LoadLoggerConfigFromEnv() *LoggerConfig {
	return &LoggerConfig{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "knowledge-ingestor"),
	}
}

// New creates a logger from config. When otelEnabled is set, records are
// also exported through the otelslog bridge.
func New(config *LoggerConfig, otelEnabled bool) *slog.Logger {
	return newWithOutput(config, otelEnabled, os.Stdout)
}

func newWithOutput(config *LoggerConfig, otelEnabled bool, output io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		Level: parseLevel(config.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: "level", Value: slog.StringValue(strings.ToLower(level.String()))}
				}
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewJSONHandler(output, options)
	if otelEnabled {
		handler = NewMultiHandler(handler, config.ServiceName)
	}

	return slog.New(handler).With("service", config.ServiceName, "version", "1.0.0")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
