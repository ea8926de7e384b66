package repository

import (
	"context"
	"fmt"
	"log/slog"

	"knowledge-ingestor/domain"
	"knowledge-ingestor/driver"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ArticleRepository implementation.
type articleRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *pgxpool.Pool, logger *slog.Logger) ArticleRepository {
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

// Exists checks whether an article with the given composite key is stored.
func (r *articleRepository) Exists(ctx context.Context, source domain.Source, sourceID string) (bool, error) {
	if r.db == nil {
		return false, fmt.Errorf("check article existence: %w", domain.ErrStoreUnavailable)
	}

	exists, err := driver.ArticleExists(ctx, r.db, source, sourceID)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to check article existence",
			"error", err, "source", source, "source_id", sourceID)
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new article row.
func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	if r.db == nil {
		return fmt.Errorf("create article: %w", domain.ErrStoreUnavailable)
	}

	inserted, err := driver.InsertArticle(ctx, r.db, article)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to create article",
			"error", err, "source", article.Source, "source_id", article.SourceID)
		return fmt.Errorf("failed to create article: %w", err)
	}

	if !inserted {
		// Lost the check-then-insert race to an overlapping run; the
		// conflict clause already kept the store consistent.
		r.logger.InfoContext(ctx, "article already stored, insert skipped",
			"source", article.Source, "source_id", article.SourceID)
		return nil
	}

	r.logger.InfoContext(ctx, "article created",
		"source", article.Source, "source_id", article.SourceID, "title", article.Title)

	return nil
}
