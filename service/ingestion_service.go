package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"knowledge-ingestor/domain"
	"knowledge-ingestor/metrics"
	"knowledge-ingestor/repository"
	"knowledge-ingestor/source"
)

// IngestionService implementation.
type ingestionService struct {
	normalizer   *Normalizer
	articles     repository.ArticleRepository
	seen         repository.SeenCache
	metrics      *metrics.IngestionMetrics
	logger       *slog.Logger
	lastRun      *RunResult
	adapters     []source.Adapter
	fetchTimeout time.Duration
	mu           sync.Mutex
}

// NewIngestionService creates the per-tick orchestrator. seen may be nil
// when the recently-seen cache is disabled.
func NewIngestionService(
	adapters []source.Adapter,
	normalizer *Normalizer,
	articles repository.ArticleRepository,
	seen repository.SeenCache,
	ingestionMetrics *metrics.IngestionMetrics,
	fetchTimeout time.Duration,
	logger *slog.Logger,
) IngestionService {
	return &ingestionService{
		adapters:     adapters,
		normalizer:   normalizer,
		articles:     articles,
		seen:         seen,
		metrics:      ingestionMetrics,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

// RunOnce executes one ingestion pass: every adapter is fanned out on its
// own goroutine, and a total outage of one source never degrades ingestion
// from the others. Adapters share no mutable state; per-source results are
// merged only after the wait group completes.
func (s *ingestionService) RunOnce(ctx context.Context) *RunResult {
	startedAt := time.Now()
	results := make([]SourceResult, len(s.adapters))

	var wg sync.WaitGroup

	for i, adapter := range s.adapters {
		wg.Add(1)

		go func(i int, adapter source.Adapter) {
			defer wg.Done()
			// A misbehaving adapter must not take down the run.
			defer func() {
				if r := recover(); r != nil {
					src := adapter.Meta().Source
					s.logger.ErrorContext(ctx, "adapter panicked",
						"source", src, "panic", r)
					s.metrics.SourceFailures.WithLabelValues(src.String()).Inc()
					results[i] = SourceResult{
						Source: src,
						Failed: true,
						Error:  fmt.Sprintf("panic: %v", r),
					}
				}
			}()

			results[i] = s.ingestSource(ctx, adapter)
		}(i, adapter)
	}

	wg.Wait()

	run := &RunResult{
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Sources:   results,
	}

	for _, r := range results {
		run.Inserted += r.Inserted
		run.Duplicates += r.Duplicates
		run.Filtered += r.Filtered

		if r.Failed {
			run.Failures++
		}
	}

	s.metrics.RunsTotal.Inc()
	s.metrics.RunDuration.Observe(run.Duration.Seconds())

	s.logger.InfoContext(ctx, "ingestion run completed",
		"duration", run.Duration,
		"inserted", run.Inserted,
		"duplicates", run.Duplicates,
		"filtered", run.Filtered,
		"failed_sources", run.Failures)

	s.mu.Lock()
	s.lastRun = run
	s.mu.Unlock()

	return run
}

// LastRun returns the most recent run summary, nil before the first run.
func (s *ingestionService) LastRun() *RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastRun
}

// ingestSource fetches one adapter and pushes its items through
// normalize → dedup → insert. Fetch failures abort only this source; store
// failures abort only the current item.
func (s *ingestionService) ingestSource(ctx context.Context, adapter source.Adapter) SourceResult {
	meta := adapter.Meta()
	result := SourceResult{Source: meta.Source}

	fetchCtx := ctx
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc

		fetchCtx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	items, err := adapter.Fetch(fetchCtx)
	if err != nil {
		// Adapters return a typed FetchError; nothing to wrap here.
		s.logger.ErrorContext(ctx, "source fetch failed, skipping until next tick",
			"source", meta.Source, "error", err)
		s.metrics.SourceFailures.WithLabelValues(meta.Source.String()).Inc()

		result.Failed = true
		result.Error = err.Error()

		return result
	}

	result.Fetched = len(items)
	s.metrics.ItemsFetched.WithLabelValues(meta.Source.String()).Add(float64(len(items)))

	for _, item := range items {
		candidate, err := s.normalizer.Normalize(item, meta)
		if err != nil {
			if errors.Is(err, domain.ErrSkipItem) {
				result.Filtered++
				s.metrics.ItemsFiltered.WithLabelValues(meta.Source.String()).Inc()
				continue
			}

			s.logger.WarnContext(ctx, "failed to normalize item",
				"source", meta.Source, "source_id", item.SourceID, "error", err)
			result.Filtered++

			continue
		}

		inserted, err := s.persist(ctx, candidate)
		if err != nil {
			// One bad insert must not abort the rest of the batch.
			s.logger.ErrorContext(ctx, "failed to persist candidate",
				"source", meta.Source, "source_id", candidate.SourceID, "error", err)
			s.metrics.StoreErrors.WithLabelValues(meta.Source.String()).Inc()
			result.StoreErrors++

			continue
		}

		if inserted {
			result.Inserted++
			s.metrics.ArticlesInserted.WithLabelValues(meta.Source.String()).Inc()
		} else {
			result.Duplicates++
			s.metrics.Duplicates.WithLabelValues(meta.Source.String()).Inc()
		}
	}

	return result
}

// persist applies the deduplication gate and inserts novel candidates.
// Returns whether a new row was written.
func (s *ingestionService) persist(ctx context.Context, article *domain.Article) (bool, error) {
	if s.seen != nil && s.seen.Seen(ctx, article.Source, article.SourceID) {
		return false, nil
	}

	exists, err := s.articles.Exists(ctx, article.Source, article.SourceID)
	if err != nil {
		return false, err
	}

	if exists {
		if s.seen != nil {
			s.seen.Mark(ctx, article.Source, article.SourceID)
		}

		return false, nil
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return false, err
	}

	if s.seen != nil {
		s.seen.Mark(ctx, article.Source, article.SourceID)
	}

	return true, nil
}
