package kubectl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/giantswarm/mcp-aks/internal/azure"
	"github.com/giantswarm/mcp-aks/internal/instrumentation"
	"github.com/giantswarm/mcp-aks/internal/logging"
)

// Router decides, per call, which backend executes a kubectl command: the
// remote AKS run-command path when the request carries a validated azure
// context, the local kubectl binary otherwise. Every invocation is handled
// synchronously and independently; there is no shared mutable state across
// calls and no retry of failed or timed-out commands.
type Router struct {
	local   LocalRunner
	remote  RemoteRunner
	policy  Policy
	metrics *instrumentation.Metrics
	logger  *slog.Logger
}

// RouterOption customizes a Router.
type RouterOption func(*Router)

// WithMetrics attaches execution metrics to the router.
func WithMetrics(m *instrumentation.Metrics) RouterOption {
	return func(r *Router) {
		r.metrics = m
	}
}

// NewRouter creates an execution router over the two backends. A nil policy
// defaults to the advisory warn-only gate.
func NewRouter(local LocalRunner, remote RemoteRunner, policy Policy, logger *slog.Logger, opts ...RouterOption) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	if policy == nil {
		policy = NewWarnOnlyPolicy(logger)
	}
	r := &Router{
		local:  local,
		remote: remote,
		policy: policy,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute runs one kubectl invocation end to end: validate the arguments,
// apply the policy gate, extract the multi-tenant context, dispatch to a
// backend and assemble the structured result. Validation failures and blocked
// commands terminate before any execution is attempted.
func (r *Router) Execute(ctx context.Context, args string, rawContext map[string]any) StructuredResult {
	params := map[string]any{"args": args}

	args = strings.TrimSpace(args)
	if args == "" {
		return errorResult("missing required parameter 'args': provide kubectl command arguments", params)
	}

	if err := r.policy.Check(args); err != nil {
		return errorResult(err.Error(), params)
	}

	rc, err := azure.ExtractResourceContext(rawContext, r.logger)
	if err != nil {
		r.logger.Warn("rejecting request with invalid azure context", logging.Err(err))
		return errorResult(err.Error(), params)
	}

	backend := logging.BackendLocal
	if rc != nil {
		backend = logging.BackendRemote
	}

	verb := strings.ToLower(strings.Fields(args)[0])
	ctx, span := instrumentation.StartExecutionSpan(ctx, backend, verb)

	start := time.Now()
	var result CommandResult
	if rc != nil {
		r.logger.Info("executing kubectl command via AKS run-command",
			logging.Command(args),
			slog.String(logging.KeySubscription, rc.SubscriptionID),
			slog.String(logging.KeyResourceName, rc.ResourceName))
		result, err = r.remote.Run(ctx, rc, args)
		if err != nil {
			// Remote backend not configured; report an actionable message
			// instead of a generic failure.
			instrumentation.EndExecutionSpan(span, -1, err.Error())
			r.metrics.RecordExecution(backend, logging.StatusError, time.Since(start))
			return errorResult(err.Error(), params)
		}
	} else {
		r.logger.Info("executing kubectl command locally", logging.Command(args))
		result = r.local.Run(ctx, args)
	}
	elapsed := time.Since(start)

	returnCode := result.ExitCode

	if result.ExitCode != 0 {
		stderr := result.Stderr
		if stderr == "" {
			stderr = "unknown error"
		}
		message := fmt.Sprintf("kubectl command failed (exit code %d): %s", result.ExitCode, stderr)

		instrumentation.EndExecutionSpan(span, result.ExitCode, message)
		r.metrics.RecordExecution(backend, logging.StatusError, elapsed)
		r.logger.Warn("kubectl command failed",
			logging.Backend(backend),
			logging.ExitCode(result.ExitCode),
			slog.Duration(logging.KeyDuration, elapsed))

		return StructuredResult{
			Status:     StatusError,
			Error:      message,
			ReturnCode: &returnCode,
			Params:     params,
		}
	}

	instrumentation.EndExecutionSpan(span, 0, "")
	r.metrics.RecordExecution(backend, logging.StatusSuccess, elapsed)
	r.logger.Info("kubectl command succeeded",
		logging.Backend(backend),
		slog.Duration(logging.KeyDuration, elapsed))

	return StructuredResult{
		Status:     StatusSuccess,
		Data:       NormalizeOutput(result.Stdout),
		ReturnCode: &returnCode,
		Params:     params,
	}
}
