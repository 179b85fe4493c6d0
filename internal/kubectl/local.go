package kubectl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/giantswarm/mcp-aks/internal/logging"
)

// DefaultKubectlPath is the program name used for local execution when no
// explicit path is configured. It is resolved via PATH.
const DefaultKubectlPath = "kubectl"

// localTimeout bounds one local kubectl invocation.
const localTimeout = 60 * time.Second

// LocalExecutor runs kubectl commands as child processes of this server.
// It is the fallback backend used when a request carries no multi-tenant
// context.
type LocalExecutor struct {
	kubectlPath string
	timeout     time.Duration
	logger      *slog.Logger
}

// NewLocalExecutor creates a LocalExecutor. An empty kubectlPath falls back
// to DefaultKubectlPath.
func NewLocalExecutor(kubectlPath string, logger *slog.Logger) *LocalExecutor {
	if kubectlPath == "" {
		kubectlPath = DefaultKubectlPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalExecutor{
		kubectlPath: kubectlPath,
		timeout:     localTimeout,
		logger:      logger,
	}
}

// Run executes the given kubectl arguments (without the program name) as a
// child process, capturing stdout, stderr and the exit code. Failures never
// propagate as errors: timeouts and spawn failures are reported as a
// CommandResult with exit code -1 and a diagnostic in Stderr.
func (e *LocalExecutor) Run(ctx context.Context, args string) CommandResult {
	tokens, err := shellwords.Parse(args)
	if err != nil {
		return CommandResult{
			ExitCode: -1,
			Stderr:   fmt.Sprintf("failed to parse kubectl arguments: %v", err),
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.logger.Debug("executing local kubectl command", logging.Command(args))

	cmd := exec.CommandContext(runCtx, e.kubectlPath, tokens...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		e.logger.Error("kubectl command timed out", logging.Command(args),
			slog.Duration(logging.KeyDuration, e.timeout))
		return CommandResult{
			ExitCode: -1,
			Stderr:   fmt.Sprintf("timed out after %d seconds: kubectl %s", int(e.timeout.Seconds()), args),
		}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			e.logger.Debug("kubectl command completed",
				logging.ExitCode(exitErr.ExitCode()))
			return CommandResult{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		e.logger.Error("failed to execute kubectl command", logging.Command(args), logging.Err(err))
		return CommandResult{
			ExitCode: -1,
			Stderr:   fmt.Sprintf("failed to execute kubectl command: %v", err),
		}
	}

	e.logger.Debug("kubectl command completed", logging.ExitCode(0))
	return CommandResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}
