package server

import (
	"context"
	"sync"

	"github.com/giantswarm/mcp-aks/internal/kubectl"
)

// ServerContext encapsulates all dependencies needed by the MCP server
// and provides a clean abstraction for dependency injection and lifecycle
// management.
type ServerContext struct {
	// Core dependencies
	router *kubectl.Router
	logger Logger
	config *Config

	// Advisory status of the local execution prerequisites, captured at
	// startup. Absence of a prerequisite never disables the server.
	prereqs kubectl.PrereqStatus

	// Context management
	ctx    context.Context
	cancel context.CancelFunc

	// Lifecycle management
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new ServerContext with default values.
// Use the provided functional options to customize the context.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	serverCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    serverCtx,
		cancel: cancel,
		config: NewDefaultConfig(),
		logger: NewDefaultLogger(),
	}

	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}

	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}

	return sc, nil
}

// Context returns the server context for cancellation and deadlines.
func (sc *ServerContext) Context() context.Context {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ctx
}

// Router returns the kubectl execution router.
func (sc *ServerContext) Router() *kubectl.Router {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.router
}

// Logger returns the logger interface.
func (sc *ServerContext) Logger() Logger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Prereqs returns the startup prerequisite status for local execution.
func (sc *ServerContext) Prereqs() kubectl.PrereqStatus {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.prereqs
}

// Shutdown gracefully shuts down the server context.
// This cancels the context and releases any resources.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.logger.Info("shutting down server context")

	if sc.cancel != nil {
		sc.cancel()
	}
	sc.shutdown = true

	return nil
}

// IsShutdown returns true if the server context has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// validate ensures all required dependencies are set.
func (sc *ServerContext) validate() error {
	if sc.router == nil {
		return ErrMissingRouter
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.config == nil {
		return ErrMissingConfig
	}
	return nil
}

// Logger defines the interface for logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)

	// Info logs an informational message.
	Info(msg string, args ...any)

	// Warn logs a warning message.
	Warn(msg string, args ...any)

	// Error logs an error message.
	Error(msg string, args ...any)
}

// Policy mode names accepted by the serve command.
const (
	// PolicyModeWarn logs mutating commands and proceeds. This is the
	// default.
	PolicyModeWarn = "warn"
	// PolicyModeApproval blocks mutating commands unless explicitly allowed.
	PolicyModeApproval = "approval"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	ServerName string `json:"serverName"`
	Version    string `json:"version"`

	// Execution settings
	KubectlPath   string `json:"kubectlPath"`
	RemoteEnabled bool   `json:"remoteEnabled"`

	// Policy gate settings
	PolicyMode        string   `json:"policyMode"`
	AllowedOperations []string `json:"allowedOperations"`

	// Logging settings
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// NewDefaultConfig creates a configuration with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName:    "mcp-aks",
		Version:       "0.1.0",
		KubectlPath:   kubectl.DefaultKubectlPath,
		RemoteEnabled: true,
		PolicyMode:    PolicyModeWarn,
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c

	if c.AllowedOperations != nil {
		clone.AllowedOperations = make([]string, len(c.AllowedOperations))
		copy(clone.AllowedOperations, c.AllowedOperations)
	}

	return &clone
}
