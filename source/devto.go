package source

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"knowledge-ingestor/domain"
)

// DefaultDevToBaseURL is the Dev.to public API root.
const DefaultDevToBaseURL = "https://dev.to"

type devToArticle struct {
	ID                     int64   `json:"id"`
	Title                  string  `json:"title"`
	URL                    string  `json:"url"`
	Description            string  `json:"description"`
	PositiveReactionsCount float64 `json:"positive_reactions_count"`
	PublishedAt            string  `json:"published_at"` // ISO-8601
}

// DevToAdapter pulls top developer articles from the Dev.to API.
type DevToAdapter struct {
	client  *http.Client
	baseURL string
	meta    Meta
}

// NewDevToAdapter creates the Dev.to adapter.
func NewDevToAdapter(baseURL string, limit int, client *http.Client) *DevToAdapter {
	if baseURL == "" {
		baseURL = DefaultDevToBaseURL
	}

	return &DevToAdapter{
		client:  client,
		baseURL: baseURL,
		meta: Meta{
			Source:   domain.SourceDevTo,
			Category: domain.CategoryProgramming,
			Limit:    limit,
		},
	}
}

// Meta returns the adapter's static identity.
func (a *DevToAdapter) Meta() Meta {
	return a.meta
}

// Fetch retrieves the current top articles.
func (a *DevToAdapter) Fetch(ctx context.Context) ([]domain.RawItem, error) {
	url := fmt.Sprintf("%s/api/articles?per_page=%d&top=1", a.baseURL, a.meta.Limit)

	var articles []devToArticle
	if err := getJSON(ctx, a.client, url, nil, &articles); err != nil {
		return nil, domain.NewFetchError(a.meta.Source, fmt.Errorf("failed to fetch articles: %w", err))
	}

	items := make([]domain.RawItem, 0, len(articles))

	for _, article := range articles {
		if article.Title == "" || article.URL == "" {
			continue
		}

		items = append(items, domain.RawItem{
			SourceID:     strconv.FormatInt(article.ID, 10),
			Title:        article.Title,
			Link:         article.URL,
			Excerpt:      article.Description,
			Score:        floatPtr(article.PositiveReactionsCount),
			PublishedRaw: article.PublishedAt,
		})
	}

	return items, nil
}
