package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"knowledge-ingestor/config"
	"knowledge-ingestor/driver"
	"knowledge-ingestor/handler"
	"knowledge-ingestor/metrics"
	"knowledge-ingestor/repository"
	"knowledge-ingestor/service"
	"knowledge-ingestor/source"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// Dependencies holds all wired application components.
type Dependencies struct {
	Config           *config.Config
	DBPool           *pgxpool.Pool
	Registry         *prometheus.Registry
	Ingestion        service.IngestionService
	HealthHandler    *handler.HealthHandler
	IngestionHandler *handler.IngestionHandler
	Logger           *slog.Logger
}

// BuildDependencies wires the full dependency graph.
func BuildDependencies(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Dependencies, func(), error) {
	dbPool, err := driver.Init(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	registry := prometheus.NewRegistry()
	ingestionMetrics := metrics.NewIngestionMetrics(registry)

	articleRepo := repository.NewArticleRepository(dbPool, log)

	var seenCache repository.SeenCache

	var redisClient *redis.Client

	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		seenCache = repository.NewRedisSeenCache(redisClient, cfg.Redis.SeenTTL, log)

		log.Info("seen cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.SeenTTL)
	}

	httpClient := source.NewHTTPClient(cfg.HTTP.Timeout)
	adapters := source.Registry(source.Config{
		HackerNewsBaseURL: cfg.Ingestion.HackerNewsBaseURL,
		DevToBaseURL:      cfg.Ingestion.DevToBaseURL,
		RedditBaseURL:     cfg.Ingestion.RedditBaseURL,
		UserAgent:         cfg.HTTP.UserAgent,
	}, httpClient, log)

	ingestionService := service.NewIngestionService(
		adapters,
		service.NewNormalizer(),
		articleRepo,
		seenCache,
		ingestionMetrics,
		cfg.Ingestion.FetchTimeout,
		log,
	)

	deps := &Dependencies{
		Config:           cfg,
		DBPool:           dbPool,
		Registry:         registry,
		Ingestion:        ingestionService,
		HealthHandler:    handler.NewHealthHandler(dbPool, log),
		IngestionHandler: handler.NewIngestionHandler(ingestionService, log),
		Logger:           log,
	}

	cleanup := func() {
		dbPool.Close()

		if redisClient != nil {
			_ = redisClient.Close()
		}
	}

	return deps, cleanup, nil
}
