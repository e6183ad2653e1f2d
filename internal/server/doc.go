// Package server provides the ServerContext dependency container shared
// by all MCP tools, plus health endpoints for the HTTP transports.
//
// The Kubernetes client is constructed exactly once at process start
// and injected here; tool packages receive it through the context
// instead of holding their own client state.
package server
