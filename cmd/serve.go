package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/instrumentation"
	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
	"github.com/k8s-mcp/k8s-mcp-server/internal/logging"
	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools/deployment"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools/event"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools/job"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools/manifest"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools/namespace"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools/node"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools/pod"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools/service"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var config ServeConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Kubernetes server",
		Long: `Start the MCP server to expose Kubernetes cluster management tools
via the Model Context Protocol.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - sse: Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport

Cluster credentials resolve from the in-cluster service account when
running inside a pod, falling back to the kubeconfig chain (--kubeconfig,
$KUBECONFIG, ~/.kube/config).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(config)
		},
	}

	// Kubernetes client flags
	cmd.Flags().StringVar(&config.KubeconfigPath, "kubeconfig", "", "Path to the kubeconfig file (defaults to $KUBECONFIG, then ~/.kube/config)")
	cmd.Flags().StringVar(&config.KubeContext, "kube-context", "", "Kubeconfig context to use (defaults to the current context)")
	cmd.Flags().StringVar(&config.DefaultNamespace, "namespace", k8s.DefaultNamespace, "Namespace used when a tool call omits one")
	cmd.Flags().Float32Var(&config.QPSLimit, "qps-limit", k8s.DefaultQPSLimit, "QPS limit for Kubernetes API calls")
	cmd.Flags().IntVar(&config.BurstLimit, "burst-limit", k8s.DefaultBurstLimit, "Burst limit for Kubernetes API calls")
	cmd.Flags().DurationVar(&config.Timeout, "timeout", k8s.DefaultTimeout*time.Second, "Timeout for Kubernetes API calls")
	cmd.Flags().StringVar(&config.KubectlPath, "kubectl-path", "kubectl", "Path to the kubectl binary used by apply_yaml")
	cmd.Flags().DurationVar(&config.ApplyTimeout, "apply-timeout", 60*time.Second, "Deadline for kubectl apply invocations")
	cmd.Flags().BoolVar(&config.DebugMode, "debug", false, "Enable debug logging")

	// Transport flags
	cmd.Flags().StringVar(&config.Transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&config.HTTPAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&config.SSEEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.MessageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.HTTPEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	// Metrics flags
	cmd.Flags().BoolVar(&config.Metrics.Enabled, "enable-metrics", false, "Serve Prometheus metrics on a dedicated listener")
	cmd.Flags().StringVar(&config.Metrics.Addr, "metrics-addr", ":9090", "Metrics server address (requires --enable-metrics)")

	return cmd
}

// toolLoggingMiddleware logs every tool invocation at debug level with
// its outcome and duration.
func toolLoggingMiddleware(logger *slog.Logger) mcpserver.ToolHandlerMiddleware {
	return func(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, request)

			status := logging.StatusSuccess
			if err != nil || (result != nil && result.IsError) {
				status = logging.StatusError
			}
			logging.WithTool(logger, request.Params.Name).Debug("tool call",
				logging.Status(status),
				slog.Duration(logging.KeyDuration, time.Since(start)),
			)

			return result, err
		}
	}
}

// runServe contains the main server logic with support for multiple
// transports.
func runServe(config ServeConfig) error {
	// Logs go to stderr unconditionally; stdout belongs to the MCP
	// protocol on the stdio transport.
	logger := logging.New(os.Stderr, config.DebugMode)

	k8sClient, err := k8s.NewClient(&k8s.ClientConfig{
		KubeconfigPath: config.KubeconfigPath,
		Context:        config.KubeContext,
		QPSLimit:       config.QPSLimit,
		BurstLimit:     config.BurstLimit,
		Timeout:        config.Timeout,
		KubectlPath:    config.KubectlPath,
		ApplyTimeout:   config.ApplyTimeout,
		Logger:         logger,
	})
	if err != nil {
		// client-go errors can embed the API server address
		logger.Error("failed to create Kubernetes client", logging.SanitizedErr(err))
		return fmt.Errorf("failed to create Kubernetes client: %w", err)
	}

	// Graceful shutdown on SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serverConfig := server.NewDefaultConfig()
	serverConfig.Version = rootCmd.Version
	if config.DefaultNamespace != "" {
		serverConfig.DefaultNamespace = config.DefaultNamespace
	}
	if config.DebugMode {
		serverConfig.LogLevel = "debug"
	}

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithK8sClient(k8sClient),
		server.WithLogger(logger),
		server.WithConfig(serverConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			logger.Error("error during server context shutdown", logging.Err(err))
		}
	}()

	metrics := instrumentation.NewMetrics()

	mcpSrv := mcpserver.NewMCPServer(serverConfig.ServerName, rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithToolHandlerMiddleware(metrics.ToolMiddleware()),
		mcpserver.WithToolHandlerMiddleware(toolLoggingMiddleware(logger)),
	)

	// Register all tool categories
	registrations := []struct {
		name     string
		register func(*mcpserver.MCPServer, *server.ServerContext) error
	}{
		{"pod", pod.RegisterPodTools},
		{"deployment", deployment.RegisterDeploymentTools},
		{"service", service.RegisterServiceTools},
		{"namespace", namespace.RegisterNamespaceTools},
		{"node", node.RegisterNodeTools},
		{"event", event.RegisterEventTools},
		{"job", job.RegisterJobTools},
		{"manifest", manifest.RegisterManifestTools},
	}
	for _, r := range registrations {
		if err := r.register(mcpSrv, serverContext); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", r.name, err)
		}
	}

	switch config.Transport {
	case transportStdio:
		// No startup message for stdio mode; stdout carries the protocol.
		return runStdioServer(mcpSrv)
	case transportSSE:
		logger.Info("starting MCP server", logging.Host(config.HTTPAddr), "transport", config.Transport)
		return runSSEServer(shutdownCtx, mcpSrv, config, logger, metrics)
	case transportStreamableHTTP:
		logger.Info("starting MCP server", logging.Host(config.HTTPAddr), "transport", config.Transport)
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, config, logger, metrics, serverContext)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, streamable-http)", config.Transport)
	}
}
