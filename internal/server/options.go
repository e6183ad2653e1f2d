package server

import (
	"errors"
	"log/slog"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
)

// Validation errors for required dependencies.
var (
	ErrMissingK8sClient = errors.New("kubernetes client is required")
	ErrMissingLogger    = errors.New("logger is required")
	ErrMissingConfig    = errors.New("config is required")
)

// Option configures a ServerContext during construction.
type Option func(*ServerContext) error

// WithK8sClient injects the Kubernetes client.
func WithK8sClient(client k8s.Client) Option {
	return func(sc *ServerContext) error {
		if client == nil {
			return ErrMissingK8sClient
		}
		sc.k8sClient = client
		return nil
	}
}

// WithLogger injects the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig injects the server configuration.
func WithConfig(config *Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return ErrMissingConfig
		}
		sc.config = config
		return nil
	}
}
