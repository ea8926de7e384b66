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

func TestDevToAdapter_Fetch(t *testing.T) {
	t.Run("should fetch top articles", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/articles", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "10", r.URL.Query().Get("per_page"))
			assert.Equal(t, "1", r.URL.Query().Get("top"))

			fmt.Fprint(w, `[
				{"id":5001,"title":"Go generics in practice","url":"https://dev.to/a/go-generics","description":"A tour.","positive_reactions_count":321,"published_at":"2023-11-14T12:00:00Z"},
				{"id":5002,"title":"","url":"https://dev.to/a/untitled"},
				{"id":5003,"title":"No url"}
			]`)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		adapter := NewDevToAdapter(server.URL, 10, server.Client())

		items, err := adapter.Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)

		item := items[0]
		assert.Equal(t, "5001", item.SourceID)
		assert.Equal(t, "Go generics in practice", item.Title)
		assert.Equal(t, "https://dev.to/a/go-generics", item.Link)
		assert.Equal(t, "A tour.", item.Excerpt)
		assert.Equal(t, "2023-11-14T12:00:00Z", item.PublishedRaw)
		require.NotNil(t, item.Score)
		assert.Equal(t, 321.0, *item.Score)
	})

	t.Run("should fail the source on a non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		adapter := NewDevToAdapter(server.URL, 10, server.Client())

		_, err := adapter.Fetch(context.Background())

		var fetchErr *domain.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, domain.SourceDevTo, fetchErr.Source)
	})

	t.Run("should expose the Dev.to identity", func(t *testing.T) {
		adapter := NewDevToAdapter("", 10, http.DefaultClient)

		meta := adapter.Meta()
		assert.Equal(t, domain.SourceDevTo, meta.Source)
		assert.Equal(t, domain.CategoryProgramming, meta.Category)
		assert.Empty(t, meta.PermalinkBase)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("should build the full adapter roster", func(t *testing.T) {
		adapters := Registry(Config{}, http.DefaultClient, testLogger())

		require.Len(t, adapters, 14)

		seen := make(map[domain.Source]bool)
		for _, adapter := range adapters {
			meta := adapter.Meta()

			assert.True(t, meta.Source.Valid(), "unknown source %q", meta.Source)
			assert.True(t, meta.Category.Valid(), "unknown category %q", meta.Category)
			assert.False(t, seen[meta.Source], "duplicate source %q", meta.Source)
			assert.Positive(t, meta.Limit)

			seen[meta.Source] = true
		}
	})
}
