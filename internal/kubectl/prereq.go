package kubectl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/client-go/tools/clientcmd"
)

// prereqProbeTimeout bounds the kubectl binary probe.
const prereqProbeTimeout = 10 * time.Second

// PrereqStatus reports the availability of the optional execution
// dependencies. Neither backend is required unconditionally: the server
// degrades gracefully when one of them is missing, so these are advisory.
type PrereqStatus struct {
	// KubectlAvailable is true when the kubectl binary responds to a client
	// version probe.
	KubectlAvailable bool
	// KubectlDetail describes the probe outcome (version string or failure).
	KubectlDetail string

	// KubeconfigAvailable is true when a kubeconfig with at least one cluster
	// can be loaded through the default loading rules.
	KubeconfigAvailable bool
	// KubeconfigDetail describes the kubeconfig probe outcome.
	KubeconfigDetail string
}

// LocalExecutionReady reports whether the local backend is fully usable.
func (s PrereqStatus) LocalExecutionReady() bool {
	return s.KubectlAvailable && s.KubeconfigAvailable
}

// CheckPrerequisites probes the local execution dependencies concurrently.
// It never fails: missing prerequisites are reported in the returned status
// so the caller can log them and continue, because remote execution via the
// AKS run-command API works without any of them.
func CheckPrerequisites(ctx context.Context, kubectlPath string, logger *slog.Logger) PrereqStatus {
	if kubectlPath == "" {
		kubectlPath = DefaultKubectlPath
	}
	if logger == nil {
		logger = slog.Default()
	}

	var status PrereqStatus
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		probeCtx, cancel := context.WithTimeout(ctx, prereqProbeTimeout)
		defer cancel()

		cmd := exec.CommandContext(probeCtx, kubectlPath, "version", "--client")
		var out bytes.Buffer
		cmd.Stdout = &out
		if err := cmd.Run(); err != nil {
			status.KubectlDetail = fmt.Sprintf("kubectl not available: %v", err)
			return nil
		}
		status.KubectlAvailable = true
		status.KubectlDetail = strings.TrimSpace(out.String())
		return nil
	})

	g.Go(func() error {
		rules := clientcmd.NewDefaultClientConfigLoadingRules()
		cfg, err := rules.Load()
		if err != nil {
			status.KubeconfigDetail = fmt.Sprintf("kubeconfig not loadable: %v", err)
			return nil
		}
		if len(cfg.Clusters) == 0 {
			status.KubeconfigDetail = "kubeconfig loaded but defines no clusters"
			return nil
		}
		status.KubeconfigAvailable = true
		status.KubeconfigDetail = fmt.Sprintf("kubeconfig loaded with %d cluster(s), current context %q",
			len(cfg.Clusters), cfg.CurrentContext)
		return nil
	})

	// The probes only report, they never error.
	_ = g.Wait()

	if !status.LocalExecutionReady() {
		logger.Warn("local kubectl execution is not fully available",
			slog.String("kubectl", status.KubectlDetail),
			slog.String("kubeconfig", status.KubeconfigDetail))
	} else {
		logger.Debug("local kubectl execution is available",
			slog.String("kubectl", status.KubectlDetail))
	}

	return status
}
