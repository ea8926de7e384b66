package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"knowledge-ingestor/domain"
)

// DefaultHackerNewsBaseURL is the Firebase mirror of the Hacker News API.
const DefaultHackerNewsBaseURL = "https://hacker-news.firebaseio.com/v0"

// hackerNewsStory is the upstream item shape.
type hackerNewsStory struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Score float64 `json:"score"`
	Time  int64   `json:"time"` // epoch seconds
}

// HackerNewsAdapter pulls the current top stories. The index call lists
// story ids; each story is then fetched individually. Isolation is
// two-level: a failed index call aborts the source, a failed story detail
// only skips that story.
type HackerNewsAdapter struct {
	client  *http.Client
	logger  *slog.Logger
	baseURL string
	meta    Meta
}

// NewHackerNewsAdapter creates the Hacker News adapter.
func NewHackerNewsAdapter(baseURL string, limit int, client *http.Client, logger *slog.Logger) *HackerNewsAdapter {
	if baseURL == "" {
		baseURL = DefaultHackerNewsBaseURL
	}

	return &HackerNewsAdapter{
		client:  client,
		logger:  logger,
		baseURL: baseURL,
		meta: Meta{
			Source:   domain.SourceHackerNews,
			Category: domain.CategoryTechnology,
			Limit:    limit,
		},
	}
}

// Meta returns the adapter's static identity.
func (a *HackerNewsAdapter) Meta() Meta {
	return a.meta
}

// Fetch lists the top story ids and resolves each into a RawItem.
func (a *HackerNewsAdapter) Fetch(ctx context.Context) ([]domain.RawItem, error) {
	var storyIDs []int64
	if err := getJSON(ctx, a.client, a.baseURL+"/topstories.json", nil, &storyIDs); err != nil {
		return nil, domain.NewFetchError(a.meta.Source, fmt.Errorf("failed to fetch top stories index: %w", err))
	}

	if len(storyIDs) > a.meta.Limit {
		storyIDs = storyIDs[:a.meta.Limit]
	}

	items := make([]domain.RawItem, 0, len(storyIDs))

	for _, storyID := range storyIDs {
		var story hackerNewsStory

		url := fmt.Sprintf("%s/item/%d.json", a.baseURL, storyID)
		if err := getJSON(ctx, a.client, url, nil, &story); err != nil {
			// A single unavailable story must not abort the source.
			a.logger.WarnContext(ctx, "skipping story",
				"source", a.meta.Source, "story_id", storyID, "error", err)
			continue
		}

		if story.Title == "" || story.URL == "" {
			continue
		}

		items = append(items, domain.RawItem{
			SourceID:      strconv.FormatInt(story.ID, 10),
			Title:         story.Title,
			Link:          story.URL,
			Score:         floatPtr(story.Score),
			PublishedUnix: story.Time,
		})
	}

	return items, nil
}
