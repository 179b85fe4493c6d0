package server

import (
	"errors"
	"time"

	"github.com/giantswarm/mcp-aks/internal/kubectl"
	"github.com/giantswarm/mcp-aks/internal/logging"
)

// Sentinel errors for missing required dependencies.
var (
	ErrMissingRouter = errors.New("kubectl execution router is required")
	ErrMissingLogger = errors.New("logger is required")
	ErrMissingConfig = errors.New("configuration is required")
)

// DefaultShutdownTimeout bounds graceful HTTP server shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// Option is a functional option for configuring ServerContext.
type Option func(*ServerContext) error

// WithRouter sets the kubectl execution router for the ServerContext.
func WithRouter(router *kubectl.Router) Option {
	return func(sc *ServerContext) error {
		if router == nil {
			return ErrMissingRouter
		}
		sc.router = router
		return nil
	}
}

// WithLogger sets the logger for the ServerContext.
func WithLogger(logger Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the ServerContext.
func WithConfig(config *Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return ErrMissingConfig
		}
		sc.config = config.Clone()
		return nil
	}
}

// WithServerName sets the server name in the configuration.
func WithServerName(name string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.ServerName = name
		return nil
	}
}

// WithPrereqStatus records the startup prerequisite probe results.
func WithPrereqStatus(status kubectl.PrereqStatus) Option {
	return func(sc *ServerContext) error {
		sc.prereqs = status
		return nil
	}
}

// NewDefaultLogger creates a logger backed by slog's default handler.
func NewDefaultLogger() Logger {
	return logging.NewSlogAdapter(nil)
}
