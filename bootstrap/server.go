package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPServer creates and configures the Echo admin server.
func NewHTTPServer(deps *Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/api/v1/health" || path == "/metrics"
		},
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			deps.Logger.InfoContext(ctx, "HTTP request completed",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"error", v.Error)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	api := e.Group("/api/v1")
	api.GET("/health", deps.HealthHandler.HandleHealth)
	api.GET("/ready", deps.HealthHandler.HandleReady)
	api.POST("/ingestion/run", deps.IngestionHandler.HandleRun)
	api.GET("/ingestion/status", deps.IngestionHandler.HandleStatus)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	return e
}

// StartHTTPServer starts the admin server in a goroutine.
func StartHTTPServer(e *echo.Echo, port int, log *slog.Logger) {
	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("starting HTTP server", "addr", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server stopped", "error", err)
		}
	}()
}
