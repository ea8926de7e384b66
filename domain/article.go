package domain

import (
	"time"
)

// Article is the canonical, store-ready representation of one ingested item.
// Rows are created exactly once on first observation of a (source, source_id)
// pair and are never updated or deleted by the pipeline.
type Article struct {
	CreatedAt   time.Time `db:"created_at"`
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	URL         string    `db:"url"`
	Source      Source    `db:"source"`
	SourceID    string    `db:"source_id"`
	Category    Category  `db:"category"`
	Score       *float64  `db:"score"`
	PublishedAt *int64    `db:"published_at"` // epoch milliseconds
	Description *string   `db:"description"`
}

// RawItem is the transient, source-shaped payload for one fetched item.
// Adapters emit RawItems with the fields their upstream actually provides;
// the normalizer reconciles them into an Article. RawItems are never
// persisted.
type RawItem struct {
	// SourceID is the item identifier within the source's namespace.
	SourceID string
	// Title is the item headline as provided by the source.
	Title string
	// Link is the item's external URL, empty for self posts.
	Link string
	// PermalinkPath is the in-source path for self posts (e.g.
	// "/r/science/comments/xyz").
	PermalinkPath string
	// IsSelfPost marks items whose content lives on the source platform.
	IsSelfPost bool
	// Body is self-post body text; truncated into the description.
	Body string
	// Excerpt is a source-provided short description, used verbatim.
	Excerpt string
	// Score is the source-native popularity signal, nil when absent.
	Score *float64
	// PublishedUnix is the origin timestamp in epoch seconds, 0 when the
	// source provides no timestamp.
	PublishedUnix int64
	// PublishedRaw is an ISO-8601 timestamp string for sources that ship
	// string timestamps, empty otherwise.
	PublishedRaw string
}
