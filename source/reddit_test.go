package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"knowledge-ingestor/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedditAdapter_Fetch(t *testing.T) {
	t.Run("should fetch top posts with the configured user agent", func(t *testing.T) {
		var gotUserAgent string

		mux := http.NewServeMux()
		mux.HandleFunc("/r/science/top.json", func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")

			assert.Equal(t, "8", r.URL.Query().Get("limit"))

			fmt.Fprint(w, `{"data":{"children":[
				{"data":{"id":"xyz","title":"New result","permalink":"/r/science/comments/xyz","selftext":"body text","is_self":true,"score":1200,"created_utc":1700000000}},
				{"data":{"id":"ext","title":"Linked paper","url":"https://journal.example.com/paper","is_self":false,"score":50,"created_utc":1700000500.5}}
			]}}`)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		adapter := NewRedditAdapter(server.URL, "science", domain.SourceRedditScience, domain.CategoryScience, 8, "test-agent/1.0", server.Client())

		items, err := adapter.Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "test-agent/1.0", gotUserAgent)

		selfPost := items[0]
		assert.Equal(t, "xyz", selfPost.SourceID)
		assert.True(t, selfPost.IsSelfPost)
		assert.Equal(t, "/r/science/comments/xyz", selfPost.PermalinkPath)
		assert.Equal(t, "body text", selfPost.Body)
		assert.Equal(t, int64(1700000000), selfPost.PublishedUnix)

		linkPost := items[1]
		assert.False(t, linkPost.IsSelfPost)
		assert.Equal(t, "https://journal.example.com/paper", linkPost.Link)
		assert.Equal(t, int64(1700000500), linkPost.PublishedUnix)
	})

	t.Run("should send a browser-like user agent by default", func(t *testing.T) {
		var gotUserAgent string

		mux := http.NewServeMux()
		mux.HandleFunc("/r/technology/top.json", func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")
			fmt.Fprint(w, `{"data":{"children":[]}}`)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		adapter := NewRedditAdapter(server.URL, "technology", domain.SourceRedditTech, domain.CategoryTechnology, 10, "", server.Client())

		_, err := adapter.Fetch(context.Background())
		require.NoError(t, err)
		assert.Contains(t, gotUserAgent, "Mozilla/5.0")
	})

	t.Run("should drop posts without a title or resolvable link", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/r/design/top.json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":{"children":[
				{"data":{"id":"no-title","url":"https://example.com/a"}},
				{"data":{"id":"no-link","title":"floating"}},
				{"data":{"id":"ok","title":"kept","url":"https://example.com/b"}}
			]}}`)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		adapter := NewRedditAdapter(server.URL, "design", domain.SourceRedditDesign, domain.CategoryDesign, 8, "", server.Client())

		items, err := adapter.Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "ok", items[0].SourceID)
	})

	t.Run("should return an empty result for an empty listing", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/r/Music/top.json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":{"children":[]}}`)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		adapter := NewRedditAdapter(server.URL, "Music", domain.SourceRedditMusic, domain.CategoryMusic, 8, "", server.Client())

		items, err := adapter.Fetch(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("should fail the source on a non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		adapter := NewRedditAdapter(server.URL, "fitness", domain.SourceRedditFitness, domain.CategoryHealth, 8, "", server.Client())

		_, err := adapter.Fetch(context.Background())

		var fetchErr *domain.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, domain.SourceRedditFitness, fetchErr.Source)
	})

	t.Run("should fail the source on a malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html>rate limited</html>`)
		}))
		defer server.Close()

		adapter := NewRedditAdapter(server.URL, "marketing", domain.SourceRedditMarketing, domain.CategoryMarketing, 8, "", server.Client())

		_, err := adapter.Fetch(context.Background())
		assert.Error(t, err)
	})

	t.Run("should use the base url as permalink base", func(t *testing.T) {
		adapter := NewRedditAdapter("", "science", domain.SourceRedditScience, domain.CategoryScience, 8, "", http.DefaultClient)

		meta := adapter.Meta()
		assert.Equal(t, DefaultRedditBaseURL, meta.PermalinkBase)
		assert.Equal(t, domain.CategoryScience, meta.Category)
	})
}
