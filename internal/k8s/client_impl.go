package k8s

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/k8s-mcp/k8s-mcp-server/internal/logging"
)

// kubernetesClient implements the Client interface using client-go.
type kubernetesClient struct {
	clientset kubernetes.Interface
	logger    *slog.Logger

	// kubectl invocation settings for manifest application
	kubectlPath  string
	applyTimeout time.Duration
}

// ClientConfig holds configuration for the Kubernetes client.
type ClientConfig struct {
	// Kubeconfig settings. Ignored when in-cluster credentials resolve.
	KubeconfigPath string
	Context        string

	// Performance settings
	QPSLimit   float32
	BurstLimit int
	Timeout    time.Duration

	// Manifest application settings
	KubectlPath  string
	ApplyTimeout time.Duration

	// Logging
	Logger *slog.Logger
}

// NewClient creates a Kubernetes client. Credential resolution tries
// in-cluster service account credentials first and falls back to a
// kubeconfig file; failure of both is fatal here, not per-call.
func NewClient(config *ClientConfig) (Client, error) {
	if config == nil {
		return nil, fmt.Errorf("client configuration is required")
	}

	if config.QPSLimit == 0 {
		config.QPSLimit = DefaultQPSLimit
	}
	if config.BurstLimit == 0 {
		config.BurstLimit = DefaultBurstLimit
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout * time.Second
	}
	if config.ApplyTimeout == 0 {
		config.ApplyTimeout = defaultApplyTimeout
	}
	if config.KubectlPath == "" {
		config.KubectlPath = defaultKubectlPath
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	restConfig, err := resolveRestConfig(config)
	if err != nil {
		return nil, err
	}

	restConfig.QPS = config.QPSLimit
	restConfig.Burst = config.BurstLimit
	restConfig.Timeout = config.Timeout

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return &kubernetesClient{
		clientset:    clientset,
		logger:       config.Logger,
		kubectlPath:  config.KubectlPath,
		applyTimeout: config.ApplyTimeout,
	}, nil
}

// NewFromClientset builds a client around an existing clientset. Tests
// use this with the fake clientset to drive the real implementation
// without a cluster.
func NewFromClientset(clientset kubernetes.Interface, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &kubernetesClient{
		clientset:    clientset,
		logger:       logger,
		kubectlPath:  defaultKubectlPath,
		applyTimeout: defaultApplyTimeout,
	}
}

// resolveRestConfig attempts in-cluster credentials first, then the
// kubeconfig chain (explicit path, KUBECONFIG, default location).
func resolveRestConfig(config *ClientConfig) (*rest.Config, error) {
	if restConfig, err := rest.InClusterConfig(); err == nil {
		config.Logger.Info("using in-cluster authentication")
		return restConfig, nil
	}

	path := config.KubeconfigPath
	if path == "" {
		if env := os.Getenv("KUBECONFIG"); env != "" {
			path = env
		}
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if path != "" {
		loadingRules.ExplicitPath = path
	}

	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		&clientcmd.ConfigOverrides{CurrentContext: config.Context},
	)

	restConfig, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("could not load Kubernetes configuration: %w", err)
	}

	config.Logger.Info("using kubeconfig authentication", "context", config.Context)
	return restConfig, nil
}

// logOperation emits a debug line for an outgoing API call.
func (c *kubernetesClient) logOperation(operation, namespace, resourceKind, name string) {
	c.logger.Debug("kubernetes operation",
		logging.Operation(operation),
		logging.Namespace(namespace),
		logging.ResourceKind(resourceKind),
		logging.ResourceName(name),
	)
}
