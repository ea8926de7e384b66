// Package source implements the feed adapters the ingestion pipeline pulls
// from. Each adapter owns one external endpoint and parses its response into
// RawItems; all adapters share the Adapter interface so the orchestrator can
// apply one isolation wrapper uniformly.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"knowledge-ingestor/domain"
)

// Meta is the static identity of one adapter: the source label, the fixed
// category bound to it, and the rule for resolving in-source permalinks.
type Meta struct {
	Source domain.Source
	// Category is assigned to every article the adapter contributes.
	Category domain.Category
	// PermalinkBase is prepended to an item's permalink path when the item
	// is hosted on the source platform itself. Empty for sources whose
	// items always carry external links.
	PermalinkBase string
	// Limit caps how many items one fetch emits.
	Limit int
}

// Adapter fetches raw payload from one external feed.
//
// Fetch returns the items one run contributes, or a domain.FetchError when
// the source as a whole failed (network error, non-2xx status, malformed
// body). Items failing per-item validation are dropped, not reported. Zero
// items with a nil error is a valid outcome.
type Adapter interface {
	Meta() Meta
	Fetch(ctx context.Context) ([]domain.RawItem, error)
}

// NewHTTPClient builds the client shared by adapter constructors. Upstream
// feeds are uncontrolled third parties, so every call is bounded by the
// configured timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// getJSON issues a GET against url, applying headers, and decodes the JSON
// response into v. A non-2xx status or undecodable body is an error.
func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}

func floatPtr(f float64) *float64 { return &f }
