// Package k8s provides the Kubernetes client abstraction used by all
// MCP tools. The Client interface is split into per-concern managers so
// tool packages depend only on the operations they need, and so tests
// can substitute fakes without a live cluster.
package k8s
