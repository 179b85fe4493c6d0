package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-aks/internal/instrumentation"
	"github.com/giantswarm/mcp-aks/internal/kubectl"
	"github.com/giantswarm/mcp-aks/internal/logging"
	"github.com/giantswarm/mcp-aks/internal/server"
	"github.com/giantswarm/mcp-aks/internal/tools/aks"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportStreamableHTTP = "streamable-http"
)

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		transport    string
		httpAddr     string
		httpEndpoint string

		policyMode        string
		allowedOperations []string
		kubectlPath       string
		disableRemote     bool
		debugMode         bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP AKS server",
		Long: `Start the MCP server exposing the call_kubectl tool.

Requests carrying an Azure resource context execute remotely through the AKS
run-command API using the caller-supplied bearer token. Requests without one
execute through the local kubectl binary. The policy gate inspects the first
kubectl verb of every command: in warn mode (the default) mutating verbs are
logged and allowed, in approval mode they are blocked unless listed in
--allowed-operations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debugMode)

			if policyMode != server.PolicyModeWarn && policyMode != server.PolicyModeApproval {
				return fmt.Errorf("invalid --policy %q: must be %q or %q",
					policyMode, server.PolicyModeWarn, server.PolicyModeApproval)
			}
			if transport != transportStdio && transport != transportStreamableHTTP {
				return fmt.Errorf("invalid --transport %q: must be %q or %q",
					transport, transportStdio, transportStreamableHTTP)
			}

			config := server.NewDefaultConfig()
			config.Version = rootCmd.Version
			config.KubectlPath = kubectlPath
			config.PolicyMode = policyMode
			config.AllowedOperations = allowedOperations
			config.RemoteEnabled = !disableRemote

			registry := prometheus.NewRegistry()
			metrics, err := instrumentation.NewMetrics(registry)
			if err != nil {
				return fmt.Errorf("failed to register metrics: %w", err)
			}

			var policy kubectl.Policy
			if policyMode == server.PolicyModeApproval {
				policy = kubectl.NewApprovalPolicy(allowedOperations)
			} else {
				policy = kubectl.NewWarnOnlyPolicy(logger)
			}

			var factory kubectl.RunCommandClientFactory
			if config.RemoteEnabled {
				factory = kubectl.NewARMRunCommandClientFactory()
			}

			router := kubectl.NewRouter(
				kubectl.NewLocalExecutor(kubectlPath, logger),
				kubectl.NewRemoteExecutor(factory, logger),
				policy,
				logger,
				kubectl.WithMetrics(metrics),
			)

			prereqs := kubectl.CheckPrerequisites(cmd.Context(), kubectlPath, logger)

			sc, err := server.NewServerContext(cmd.Context(),
				server.WithRouter(router),
				server.WithLogger(logging.NewSlogAdapter(logger)),
				server.WithConfig(config),
				server.WithPrereqStatus(prereqs),
			)
			if err != nil {
				return fmt.Errorf("failed to create server context: %w", err)
			}
			defer func() {
				if err := sc.Shutdown(); err != nil {
					logger.Error("error during server context shutdown", logging.Err(err))
				}
			}()

			mcpSrv := mcpserver.NewMCPServer(config.ServerName, config.Version,
				mcpserver.WithToolCapabilities(true),
			)

			if err := aks.RegisterKubectlTools(mcpSrv, sc); err != nil {
				return fmt.Errorf("failed to register kubectl tools: %w", err)
			}

			// Graceful shutdown on SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			switch transport {
			case transportStdio:
				logger.Info("starting MCP server", slog.String("transport", transportStdio))
				return runStdioServer(mcpSrv)
			default:
				return runStreamableHTTPServer(ctx, mcpSrv, sc, registry, httpAddr, httpEndpoint)
			}
		},
	}

	// Flags fall back to MCP_AKS_* environment variables for container
	// deployments where flags are awkward to set.
	cmd.Flags().StringVar(&transport, "transport", envOrDefault("MCP_AKS_TRANSPORT", transportStdio),
		"Transport to use: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", envOrDefault("MCP_AKS_HTTP_ADDR", ":8080"),
		"Listen address for the streamable-http transport")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", envOrDefault("MCP_AKS_HTTP_ENDPOINT", "/mcp"),
		"MCP endpoint path for the streamable-http transport")
	cmd.Flags().StringVar(&policyMode, "policy", envOrDefault("MCP_AKS_POLICY", server.PolicyModeWarn),
		"Policy gate for mutating kubectl verbs: warn (log and proceed) or approval (block unless allowed)")
	cmd.Flags().StringSliceVar(&allowedOperations, "allowed-operations", nil,
		"Mutating verbs allowed without approval when --policy=approval (e.g. apply,patch)")
	cmd.Flags().StringVar(&kubectlPath, "kubectl-path", envOrDefault("MCP_AKS_KUBECTL_PATH", kubectl.DefaultKubectlPath),
		"Path to the kubectl binary used for local execution")
	cmd.Flags().BoolVar(&disableRemote, "disable-remote", false,
		"Disable the AKS run-command backend; requests with an azure context will fail with an explanatory error")
	cmd.Flags().BoolVar(&debugMode, "debug", false,
		"Enable debug logging")

	return cmd
}

// envOrDefault returns the value of the environment variable when set,
// otherwise the default.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// newLogger builds the process logger. Logs always go to stderr so that the
// stdio transport keeps stdout free for MCP framing.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// runStdioServer runs the server with STDIO transport.
func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	// Don't print to stdout in stdio mode as it interferes with MCP communication
	return nil
}
