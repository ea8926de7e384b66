package source

import (
	"log/slog"
	"net/http"

	"knowledge-ingestor/domain"
)

// subredditSpec binds one subreddit to its fixed source label, category and
// item cap.
type subredditSpec struct {
	subreddit string
	source    domain.Source
	category  domain.Category
	limit     int
}

// subreddits is the static roster of community feeds. r/technology keeps
// the larger cap it historically had; the topic feeds pull eight.
var subreddits = []subredditSpec{
	{"technology", domain.SourceRedditTech, domain.CategoryTechnology, 10},
	{"GetMotivated", domain.SourceRedditMotivation, domain.CategoryProductivity, 8},
	{"marketing", domain.SourceRedditMarketing, domain.CategoryMarketing, 8},
	{"productivity", domain.SourceRedditProductivity, domain.CategoryProductivity, 8},
	{"Music", domain.SourceRedditMusic, domain.CategoryMusic, 8},
	{"entrepreneur", domain.SourceRedditBusiness, domain.CategoryBusiness, 8},
	{"design", domain.SourceRedditDesign, domain.CategoryDesign, 8},
	{"LifeProTips", domain.SourceRedditTips, domain.CategoryLifestyle, 8},
	{"science", domain.SourceRedditScience, domain.CategoryScience, 8},
	{"photography", domain.SourceRedditPhotography, domain.CategoryPhotography, 8},
	{"personalfinance", domain.SourceRedditFinance, domain.CategoryFinance, 8},
	{"fitness", domain.SourceRedditFitness, domain.CategoryHealth, 8},
}

// Config carries the endpoint overrides and shared HTTP settings the
// registry needs. Zero values fall back to production defaults.
type Config struct {
	HackerNewsBaseURL string
	DevToBaseURL      string
	RedditBaseURL     string
	UserAgent         string
	HackerNewsLimit   int
	DevToLimit        int
}

// Registry builds the full static adapter roster the orchestrator iterates:
// Hacker News, Dev.to, and one adapter per configured subreddit.
func Registry(cfg Config, client *http.Client, logger *slog.Logger) []Adapter {
	hnLimit := cfg.HackerNewsLimit
	if hnLimit <= 0 {
		hnLimit = 10
	}

	devToLimit := cfg.DevToLimit
	if devToLimit <= 0 {
		devToLimit = 10
	}

	adapters := []Adapter{
		NewHackerNewsAdapter(cfg.HackerNewsBaseURL, hnLimit, client, logger),
		NewDevToAdapter(cfg.DevToBaseURL, devToLimit, client),
	}

	for _, spec := range subreddits {
		adapters = append(adapters, NewRedditAdapter(
			cfg.RedditBaseURL,
			spec.subreddit,
			spec.source,
			spec.category,
			spec.limit,
			cfg.UserAgent,
			client,
		))
	}

	return adapters
}
