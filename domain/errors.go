// ABOUTME: Domain-level sentinel and typed errors for the ingestion pipeline
// ABOUTME: These errors are used with errors.Is()/errors.As() for error type checking
package domain

import (
	"errors"
	"fmt"
)

// Item-level errors
var (
	// ErrSkipItem indicates an item failed per-item validation (missing
	// title or resolvable link). It is a silent filter, not a failure.
	ErrSkipItem = errors.New("item skipped by validation")
)

// Store-level errors
var (
	// ErrStoreUnavailable indicates the article store cannot be reached.
	ErrStoreUnavailable = errors.New("article store unavailable")
)

// FetchError wraps any failure local to one source adapter: network errors,
// non-2xx statuses, and undecodable bodies. It never propagates past the
// orchestrator's per-adapter isolation boundary.
type FetchError struct {
	Err    error
	Source Source
}

// NewFetchError builds a FetchError for the given source.
func NewFetchError(source Source, err error) *FetchError {
	return &FetchError{Source: source, Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for source %q: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
