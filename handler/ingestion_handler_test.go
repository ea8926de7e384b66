package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"knowledge-ingestor/domain"
	"knowledge-ingestor/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

type fakeIngestionService struct {
	mu      sync.Mutex
	lastRun *service.RunResult
	runs    int
	done    chan struct{}
}

func (f *fakeIngestionService) RunOnce(ctx context.Context) *service.RunResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.runs++
	if f.done != nil {
		close(f.done)
		f.done = nil
	}

	return f.lastRun
}

func (f *fakeIngestionService) LastRun() *service.RunResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastRun
}

func (f *fakeIngestionService) runCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.runs
}

func TestIngestionHandler_HandleRun(t *testing.T) {
	t.Run("should accept the request and trigger a run", func(t *testing.T) {
		fake := &fakeIngestionService{done: make(chan struct{})}
		done := fake.done
		h := NewIngestionHandler(fake, testLogger())

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ingestion/run", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.HandleRun(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"status":"accepted"}`, rec.Body.String())

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("run was not triggered")
		}

		assert.Equal(t, 1, fake.runCount())
	})
}

func TestIngestionHandler_HandleStatus(t *testing.T) {
	t.Run("should report when no run has completed", func(t *testing.T) {
		h := NewIngestionHandler(&fakeIngestionService{}, testLogger())

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ingestion/status", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.HandleStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"no runs completed yet"}`, rec.Body.String())
	})

	t.Run("should return the last run summary", func(t *testing.T) {
		fake := &fakeIngestionService{
			lastRun: &service.RunResult{
				StartedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
				Inserted:  3,
				Sources: []service.SourceResult{
					{Source: domain.SourceHackerNews, Fetched: 10, Inserted: 3, Duplicates: 7},
				},
			},
		}
		h := NewIngestionHandler(fake, testLogger())

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ingestion/status", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.HandleStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"inserted":3`)
		assert.Contains(t, rec.Body.String(), "Hacker News")
	})
}
