package kubectl

import (
	"context"

	"github.com/giantswarm/mcp-aks/internal/azure"
)

// CommandResult is the normalized outcome of one kubectl invocation,
// regardless of which backend produced it. ExitCode 0 means success; -1 is
// synthesized for failures that never produced a real exit code (timeouts,
// spawn errors, API failures).
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// LocalRunner executes kubectl arguments through the local kubectl binary.
// Implementations never return an error: all failures are folded into the
// CommandResult.
type LocalRunner interface {
	Run(ctx context.Context, args string) CommandResult
}

// RemoteRunner executes kubectl arguments against a remote AKS cluster using
// a per-request resource context. Generic execution failures are folded into
// the CommandResult; the only returned error is azure.ErrRemoteUnavailable
// when no run-command client is configured.
type RemoteRunner interface {
	Run(ctx context.Context, rc *azure.ResourceContext, args string) (CommandResult, error)
}
