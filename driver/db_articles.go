package driver

import (
	"context"
	"fmt"

	"knowledge-ingestor/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ArticleExists runs the point lookup on the (source, source_id) index. At
// most one row can match by the uniqueness constraint.
func ArticleExists(ctx context.Context, db *pgxpool.Pool, source domain.Source, sourceID string) (bool, error) {
	if db == nil {
		return false, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM knowledge_articles
			WHERE source = $1 AND source_id = $2
		)
	`

	var exists bool

	err := db.QueryRow(ctx, query, string(source), sourceID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// InsertArticle inserts a new article row. The ON CONFLICT clause is the
// store-level backstop for the composite-key invariant: when two
// overlapping runs race past the existence check, the second insert becomes
// a no-op instead of a duplicate row. Returns whether a row was written.
func InsertArticle(ctx context.Context, db *pgxpool.Pool, article *domain.Article) (bool, error) {
	if db == nil {
		return false, fmt.Errorf("database connection is nil")
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}

	query := `
		INSERT INTO knowledge_articles
			(id, title, url, source, source_id, category, score, published_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (source, source_id) DO NOTHING
	`

	var category *string
	if article.Category != "" {
		c := string(article.Category)
		category = &c
	}

	tag, err := db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.URL,
		string(article.Source),
		article.SourceID,
		category,
		article.Score,
		article.PublishedAt,
		article.Description,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
