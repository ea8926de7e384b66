package service

import (
	"context"
	"time"

	"knowledge-ingestor/domain"
)

// IngestionService runs one ingestion pass over the configured source
// adapters. A run never fails as a whole: every error class is contained at
// item or source granularity, and the returned summary exists only for
// logging, metrics, and the admin status endpoint.
type IngestionService interface {
	RunOnce(ctx context.Context) *RunResult
	LastRun() *RunResult
}

// RunResult summarizes one ingestion run.
type RunResult struct {
	StartedAt  time.Time      `json:"started_at"`
	Duration   time.Duration  `json:"duration"`
	Sources    []SourceResult `json:"sources"`
	Inserted   int            `json:"inserted"`
	Duplicates int            `json:"duplicates"`
	Filtered   int            `json:"filtered"`
	Failures   int            `json:"failures"`
}

// SourceResult is the per-source slice of a run summary.
type SourceResult struct {
	Source      domain.Source `json:"source"`
	Error       string        `json:"error,omitempty"`
	Fetched     int           `json:"fetched"`
	Inserted    int           `json:"inserted"`
	Duplicates  int           `json:"duplicates"`
	Filtered    int           `json:"filtered"`
	StoreErrors int           `json:"store_errors"`
	Failed      bool          `json:"failed"`
}
