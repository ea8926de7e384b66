package handler

import (
	"context"
	"log/slog"
	"net/http"

	"knowledge-ingestor/service"

	"github.com/labstack/echo/v4"
)

// IngestionHandler exposes the admin surface of the pipeline: a manual
// trigger and the summary of the most recent run.
type IngestionHandler struct {
	ingestion service.IngestionService
	logger    *slog.Logger
}

// NewIngestionHandler creates a new ingestion handler.
func NewIngestionHandler(ingestion service.IngestionService, logger *slog.Logger) *IngestionHandler {
	return &IngestionHandler{
		ingestion: ingestion,
		logger:    logger,
	}
}

// HandleRun triggers one ingestion run asynchronously. Overlap with a
// scheduled tick is tolerated; the store-level uniqueness constraint keeps
// concurrent runs from duplicating rows.
func (h *IngestionHandler) HandleRun(c echo.Context) error {
	h.logger.Info("manual ingestion run requested")

	// Detached from the request context so a closed connection does not
	// cancel the run mid-flight.
	go h.ingestion.RunOnce(context.Background())

	return c.JSON(http.StatusAccepted, map[string]string{
		"status": "accepted",
	})
}

// HandleStatus returns the last run summary.
func (h *IngestionHandler) HandleStatus(c echo.Context) error {
	lastRun := h.ingestion.LastRun()
	if lastRun == nil {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "no runs completed yet",
		})
	}

	return c.JSON(http.StatusOK, lastRun)
}
