package source

import (
	"context"
	"fmt"
	"net/http"

	"knowledge-ingestor/domain"
)

// DefaultRedditBaseURL is the public Reddit JSON endpoint root. It also
// serves as the permalink base for self posts.
const DefaultRedditBaseURL = "https://www.reddit.com"

// DefaultUserAgent is sent on every Reddit request. Reddit rejects default
// and empty user agents, so a browser-like string is required.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Permalink  string  `json:"permalink"`
	Selftext   string  `json:"selftext"`
	IsSelf     bool    `json:"is_self"`
	Score      float64 `json:"score"`
	CreatedUTC float64 `json:"created_utc"` // epoch seconds
}

// RedditAdapter pulls top posts from one subreddit. Twelve instances are
// configured, one per topic community, each bound to a fixed source label
// and category.
type RedditAdapter struct {
	client    *http.Client
	baseURL   string
	subreddit string
	userAgent string
	meta      Meta
}

// NewRedditAdapter creates an adapter for one subreddit.
func NewRedditAdapter(baseURL, subreddit string, sourceLabel domain.Source, category domain.Category, limit int, userAgent string, client *http.Client) *RedditAdapter {
	if baseURL == "" {
		baseURL = DefaultRedditBaseURL
	}

	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &RedditAdapter{
		client:    client,
		baseURL:   baseURL,
		subreddit: subreddit,
		userAgent: userAgent,
		meta: Meta{
			Source:        sourceLabel,
			Category:      category,
			PermalinkBase: baseURL,
			Limit:         limit,
		},
	}
}

// Meta returns the adapter's static identity.
func (a *RedditAdapter) Meta() Meta {
	return a.meta
}

// Fetch retrieves the subreddit's current top posts.
func (a *RedditAdapter) Fetch(ctx context.Context) ([]domain.RawItem, error) {
	url := fmt.Sprintf("%s/r/%s/top.json?limit=%d", a.baseURL, a.subreddit, a.meta.Limit)

	var listing redditListing
	headers := map[string]string{"User-Agent": a.userAgent}

	if err := getJSON(ctx, a.client, url, headers, &listing); err != nil {
		return nil, domain.NewFetchError(a.meta.Source, fmt.Errorf("failed to fetch r/%s: %w", a.subreddit, err))
	}

	items := make([]domain.RawItem, 0, len(listing.Data.Children))

	for _, child := range listing.Data.Children {
		post := child.Data
		if post.Title == "" {
			continue
		}

		// A post needs either an external link or a constructable
		// permalink to be usable.
		if post.URL == "" && post.Permalink == "" {
			continue
		}

		items = append(items, domain.RawItem{
			SourceID:      post.ID,
			Title:         post.Title,
			Link:          post.URL,
			PermalinkPath: post.Permalink,
			IsSelfPost:    post.IsSelf,
			Body:          post.Selftext,
			Score:         floatPtr(post.Score),
			PublishedUnix: int64(post.CreatedUTC),
		})
	}

	return items, nil
}
