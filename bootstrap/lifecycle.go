package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"knowledge-ingestor/config"
	"knowledge-ingestor/logger"
	"knowledge-ingestor/orchestrator"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the scheduler and the admin server, then waits for a shutdown
// signal.
func Run(ctx context.Context) error {
	otelEnabled := logger.OTelEnabled()

	loggerConfig := logger.LoadLoggerConfigFromEnv()

	if otelEnabled {
		otelShutdown, err := logger.InitOTel(ctx, loggerConfig.ServiceName)
		if err != nil {
			fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
			otelEnabled = false
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := otelShutdown(shutdownCtx); err != nil {
					fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
				}
			}()
		}
	}

	log := logger.New(loggerConfig, otelEnabled)
	logger.Logger = log

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Info("starting knowledge-ingestor",
		"log_level", loggerConfig.Level,
		"otel_enabled", otelEnabled,
		"interval", cfg.Ingestion.Interval,
		"seen_cache", cfg.Redis.Enabled)

	deps, cleanup, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()

	jobs := orchestrator.NewJobGroup(jobCtx, log)
	jobs.Add(orchestrator.NewJobRunner(orchestrator.JobConfig{
		Name:           "ingestion",
		Interval:       cfg.Ingestion.Interval,
		RunImmediately: cfg.Ingestion.RunOnStart,
	}, func(ctx context.Context) {
		deps.Ingestion.RunOnce(ctx)
	}, log))

	e := NewHTTPServer(deps)
	StartHTTPServer(e, cfg.Server.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutdown signal received")

	jobs.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server gracefully", "error", err)
		return err
	}

	log.Info("shutdown complete")

	return nil
}
