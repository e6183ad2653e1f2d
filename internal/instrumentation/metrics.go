package instrumentation

import (
	"context"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/logging"
)

// Metrics records tool invocation counts and durations. Labels are kept
// to tool name and result status to bound cardinality; namespaces and
// resource names never become labels.
type Metrics struct {
	registry *prometheus.Registry

	toolCallsTotal   *prometheus.CounterVec
	toolCallDuration *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance with its own registry, so the
// default global registry stays untouched in tests.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{registry: registry}

	m.toolCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mcp_tool_calls_total",
		Help: "Total number of MCP tool invocations.",
	}, []string{"tool", "status"})

	m.toolCallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mcp_tool_call_duration_seconds",
		Help:    "MCP tool invocation duration in seconds.",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 60.0},
	}, []string{"tool"})

	registry.MustRegister(m.toolCallsTotal, m.toolCallDuration)

	return m
}

// RecordToolCall records one tool invocation.
func (m *Metrics) RecordToolCall(tool, status string, duration time.Duration) {
	m.toolCallsTotal.WithLabelValues(tool, status).Inc()
	m.toolCallDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// ToolMiddleware returns an MCP tool-handler middleware recording every
// invocation. Handlers report operational failures as error-text
// results rather than Go errors, so both paths count as "error".
func (m *Metrics) ToolMiddleware() mcpserver.ToolHandlerMiddleware {
	return func(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, request)

			status := logging.StatusSuccess
			if err != nil || (result != nil && result.IsError) {
				status = logging.StatusError
			}
			m.RecordToolCall(request.Params.Name, status, time.Since(start))

			return result, err
		}
	}
}

// Handler returns the HTTP handler serving this registry in Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
