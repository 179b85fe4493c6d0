package kubectl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/giantswarm/mcp-aks/internal/azure"
	"github.com/giantswarm/mcp-aks/internal/logging"
)

// remoteTimeout bounds one AKS run-command operation, including polling the
// long-running operation to completion.
const remoteTimeout = 300 * time.Second

// provisioningSucceeded is the terminal state of a successful run-command
// operation as reported by the AKS management API.
const provisioningSucceeded = "Succeeded"

// RunCommandStatus is the outcome of one AKS run-command operation. ExitCode
// and Logs are pointers because the API may omit them; missing values default
// to 0 and empty output.
type RunCommandStatus struct {
	ExitCode          *int32
	Logs              *string
	ProvisioningState string
	Reason            string
}

// RunCommandClient invokes the blocking run-command operation against one
// AKS cluster. The production implementation is backed by the Azure SDK
// ManagedClustersClient; tests substitute fakes.
type RunCommandClient interface {
	RunCommand(ctx context.Context, resourceGroup, clusterName, command string) (*RunCommandStatus, error)
}

// RunCommandClientFactory builds a run-command client bound to one
// subscription, authenticating with tokens from the given provider. A new
// client is built per request because subscription and credential both come
// from the request context.
type RunCommandClientFactory func(subscriptionID string, tokens azure.TokenProvider) (RunCommandClient, error)

// RemoteExecutor runs kubectl commands on remote AKS clusters through the
// management API, so no kubeconfig or direct network path to the cluster is
// needed. The caller-supplied bearer token authenticates each call.
type RemoteExecutor struct {
	newClient RunCommandClientFactory
	timeout   time.Duration
	logger    *slog.Logger
}

// NewRemoteExecutor creates a RemoteExecutor. A nil factory produces an
// executor whose Run always reports azure.ErrRemoteUnavailable; this keeps
// the server usable for local execution when remote support is disabled.
func NewRemoteExecutor(newClient RunCommandClientFactory, logger *slog.Logger) *RemoteExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoteExecutor{
		newClient: newClient,
		timeout:   remoteTimeout,
		logger:    logger,
	}
}

// Run executes "kubectl <args>" on the cluster identified by the resource
// context. All execution failures (client construction, network, timeout,
// non-success operation outcome) are folded into a CommandResult with exit
// code -1; the only returned error is azure.ErrRemoteUnavailable when no
// run-command client is configured.
func (e *RemoteExecutor) Run(ctx context.Context, rc *azure.ResourceContext, args string) (CommandResult, error) {
	if e.newClient == nil {
		e.logger.Error("remote execution requested but no run-command client is configured")
		return CommandResult{}, azure.ErrRemoteUnavailable
	}

	client, err := e.newClient(rc.SubscriptionID, azure.NewStaticTokenProvider(rc.AccessToken))
	if err != nil {
		return CommandResult{
			ExitCode: -1,
			Stderr:   fmt.Sprintf("failed to create AKS management client: %v", err),
		}, nil
	}

	command := "kubectl " + args
	e.logger.Info("executing kubectl command via AKS run-command",
		logging.Command(args),
		slog.String(logging.KeySubscription, rc.SubscriptionID),
		slog.String(logging.KeyResourceGroup, rc.ResourceGroup),
		slog.String(logging.KeyResourceName, rc.ResourceName))

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	status, err := client.RunCommand(runCtx, rc.ResourceGroup, rc.ResourceName, command)
	if err != nil {
		e.logger.Error("AKS run-command failed",
			logging.Command(args),
			slog.String(logging.KeyResourceName, rc.ResourceName),
			logging.Err(err))
		return CommandResult{
			ExitCode: -1,
			Stderr:   fmt.Sprintf("AKS run-command failed: %v", err),
		}, nil
	}

	if status.ProvisioningState != "" && status.ProvisioningState != provisioningSucceeded {
		reason := status.Reason
		if reason == "" {
			reason = "no reason reported"
		}
		return CommandResult{
			ExitCode: -1,
			Stderr: fmt.Sprintf("AKS run-command finished in state %q: %s",
				status.ProvisioningState, reason),
		}, nil
	}

	var exitCode int
	if status.ExitCode != nil {
		exitCode = int(*status.ExitCode)
	}
	var stdout string
	if status.Logs != nil {
		stdout = *status.Logs
	}

	e.logger.Debug("AKS run-command completed", logging.ExitCode(exitCode))

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   "",
	}, nil
}
