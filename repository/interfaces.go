package repository

import (
	"context"

	"knowledge-ingestor/domain"
)

// ArticleRepository is the pipeline's view of the article store: a point
// lookup on the (source, source_id) index plus insert. The pipeline never
// updates or deletes rows.
type ArticleRepository interface {
	Exists(ctx context.Context, source domain.Source, sourceID string) (bool, error)
	Create(ctx context.Context, article *domain.Article) error
}

// SeenCache remembers recently ingested composite keys so the common
// re-fetch case can skip the store lookup. It is an optimization only:
// implementations degrade to a miss on any cache failure, and the store's
// uniqueness constraint remains the source of truth.
type SeenCache interface {
	Seen(ctx context.Context, source domain.Source, sourceID string) bool
	Mark(ctx context.Context, source domain.Source, sourceID string)
}
