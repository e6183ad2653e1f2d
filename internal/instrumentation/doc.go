// Package instrumentation provides Prometheus metrics for tool
// invocations. Metrics are exposed on a dedicated listener, separate
// from the MCP endpoint, when an HTTP transport is used.
package instrumentation
