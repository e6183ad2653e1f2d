package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/instrumentation"
	"github.com/k8s-mcp/k8s-mcp-server/internal/logging"
	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// runStreamableHTTPServer runs the server with the Streamable HTTP
// transport. Health probes share the listener; metrics get their own.
func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, config ServeConfig, logger *slog.Logger, metrics *instrumentation.Metrics, sc *server.ServerContext) error {
	mux := http.NewServeMux()

	mcpHandler := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath(config.HTTPEndpoint),
	)
	mux.Handle(config.HTTPEndpoint, mcpHandler)

	healthChecker := server.NewHealthChecker(sc)
	healthChecker.RegisterHealthEndpoints(mux)

	logger.Info("streamable HTTP server starting",
		logging.Host(config.HTTPAddr),
		"endpoint", config.HTTPEndpoint,
		"health_endpoints", []string{"/healthz", "/readyz"},
	)

	metricsServer, err := startMetricsServer(config.Metrics, logger, metrics)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping HTTP server")
		healthChecker.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		shutdownMetricsServer(shutdownCtx, metricsServer, logger)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		logger.Info("HTTP server stopped normally")
	}

	logger.Info("HTTP server gracefully stopped")
	return nil
}

// startMetricsServer starts the dedicated metrics listener when
// enabled. Serving metrics on a separate port keeps scrape traffic off
// the MCP transport.
func startMetricsServer(config MetricsServeConfig, logger *slog.Logger, metrics *instrumentation.Metrics) (*http.Server, error) {
	if !config.Enabled {
		return nil, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	metricsServer := &http.Server{
		Addr:              config.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", logging.Err(err))
		}
	}()

	logger.Info("metrics server started", logging.Host(config.Addr), "endpoint", "/metrics")
	return metricsServer, nil
}

func shutdownMetricsServer(ctx context.Context, metricsServer *http.Server, logger *slog.Logger) {
	if metricsServer == nil {
		return
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		logger.Error("error shutting down metrics server", logging.Err(err))
	}
}
