package cmd

import "time"

// ServeConfig collects all serve command options after flag parsing.
type ServeConfig struct {
	// Transport options
	Transport       string
	HTTPAddr        string
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Kubernetes client options
	KubeconfigPath   string
	KubeContext      string
	DefaultNamespace string
	QPSLimit         float32
	BurstLimit       int
	Timeout          time.Duration
	KubectlPath      string
	ApplyTimeout     time.Duration

	DebugMode bool

	Metrics MetricsServeConfig
}

// MetricsServeConfig configures the dedicated metrics listener. Metrics
// are served on their own address so cluster-internal scraping never
// shares a port with the MCP transport.
type MetricsServeConfig struct {
	Enabled bool
	Addr    string
}
