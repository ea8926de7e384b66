package service

import (
	"html"
	"strings"
	"time"

	"knowledge-ingestor/domain"
	"knowledge-ingestor/source"

	"github.com/microcosm-cc/bluemonday"
)

// descriptionLimit caps excerpts derived from self-post body text.
const descriptionLimit = 200

// Normalizer maps one validated RawItem plus its adapter's static identity
// into a canonical Article candidate. It is pure: no network, no store
// access.
type Normalizer struct {
	stripper *bluemonday.Policy
}

// NewNormalizer creates a normalizer. Body text is stripped of any HTML
// before truncation so markup never leaks into stored descriptions.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		stripper: bluemonday.StrictPolicy(),
	}
}

// Normalize produces the Article candidate for item. It returns
// domain.ErrSkipItem for items failing per-item validation: a missing
// title, a missing source id, or no resolvable link.
func (n *Normalizer) Normalize(item domain.RawItem, meta source.Meta) (*domain.Article, error) {
	title := strings.TrimSpace(item.Title)
	if title == "" || item.SourceID == "" {
		return nil, domain.ErrSkipItem
	}

	url := resolveURL(item, meta)
	if url == "" {
		return nil, domain.ErrSkipItem
	}

	article := &domain.Article{
		Title:    title,
		URL:      url,
		Source:   meta.Source,
		SourceID: item.SourceID,
		Category: meta.Category,
		Score:    item.Score,
	}

	if description := n.description(item); description != "" {
		article.Description = &description
	}

	if ms, ok := publishedAtMillis(item); ok {
		article.PublishedAt = &ms
	}

	return article, nil
}

// resolveURL applies the permalink-construction rule: self posts link into
// the source platform, everything else keeps its external link.
func resolveURL(item domain.RawItem, meta source.Meta) string {
	if item.IsSelfPost && item.PermalinkPath != "" && meta.PermalinkBase != "" {
		return meta.PermalinkBase + item.PermalinkPath
	}

	if item.Link != "" {
		return item.Link
	}

	if item.PermalinkPath != "" && meta.PermalinkBase != "" {
		return meta.PermalinkBase + item.PermalinkPath
	}

	return ""
}

// description prefers self-post body text (stripped and truncated) over a
// source-provided excerpt (used verbatim). The sanitizer entity-escapes its
// output, so the text is unescaped again to keep the stored description a
// plain-text prefix of the body.
func (n *Normalizer) description(item domain.RawItem) string {
	if item.Body != "" {
		text := html.UnescapeString(n.stripper.Sanitize(item.Body))
		return truncateRunes(strings.TrimSpace(text), descriptionLimit)
	}

	return strings.TrimSpace(item.Excerpt)
}

// publishedAtMillis converts the source's native time representation to
// epoch milliseconds. An unparseable string timestamp leaves the field
// absent rather than failing the item.
func publishedAtMillis(item domain.RawItem) (int64, bool) {
	if item.PublishedRaw != "" {
		t, err := time.Parse(time.RFC3339, item.PublishedRaw)
		if err != nil {
			return 0, false
		}
		return t.UnixMilli(), true
	}

	if item.PublishedUnix > 0 {
		return item.PublishedUnix * 1000, true
	}

	return 0, false
}

// truncateRunes takes a character-count prefix, not a word-aware one.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
