// Package orchestrator schedules the ingestion pipeline. A JobRunner owns
// one interval-triggered job; the tick fires the job, consumes no return
// value, and keeps ticking regardless of what happened inside the run.
package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobConfig configures a job runner.
type JobConfig struct {
	Name     string
	Interval time.Duration
	// RunImmediately runs the job once before starting the ticker.
	RunImmediately bool
}

// JobRunner manages the lifecycle of a single scheduled job.
type JobRunner struct {
	config JobConfig
	fn     func(ctx context.Context)
	logger *slog.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJobRunner creates a new job runner.
func NewJobRunner(config JobConfig, fn func(ctx context.Context), logger *slog.Logger) *JobRunner {
	return &JobRunner{
		config: config,
		fn:     fn,
		logger: logger,
	}
}

// Start starts the job runner in a goroutine.
func (r *JobRunner) Start(ctx context.Context) {
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		r.run(jobCtx)
	}()
}

// Stop stops the job runner and waits for it to finish.
func (r *JobRunner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}

	r.wg.Wait()
}

// run is the main loop of the job runner.
func (r *JobRunner) run(ctx context.Context) {
	if r.config.RunImmediately {
		r.invoke(ctx)
	}

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "job stopped", "job", r.config.Name)
			return
		case <-ticker.C:
			r.invoke(ctx)
		}
	}
}

// invoke runs one tick with panic containment, so a failing job never
// halts future scheduled runs.
func (r *JobRunner) invoke(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "panic in job run", "job", r.config.Name, "panic", rec)
		}
	}()

	r.fn(ctx)
}

// JobGroup manages a collection of job runners.
type JobGroup struct {
	ctx     context.Context
	logger  *slog.Logger
	runners []*JobRunner
}

// NewJobGroup creates a new job group. The provided context is used for all
// runners added via Add.
func NewJobGroup(ctx context.Context, logger *slog.Logger) *JobGroup {
	return &JobGroup{ctx: ctx, logger: logger}
}

// Add adds a job runner to the group and starts it immediately.
func (g *JobGroup) Add(runner *JobRunner) {
	g.runners = append(g.runners, runner)
	g.logger.InfoContext(g.ctx, "starting job", "job", runner.config.Name)
	runner.Start(g.ctx)
}

// StopAll stops all jobs in the group and waits for them to finish.
func (g *JobGroup) StopAll() {
	for _, r := range g.runners {
		r.Stop()
	}
}
