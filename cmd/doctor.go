package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/mcp-aks/internal/kubectl"
)

// newDoctorCmd creates the Cobra command that reports the availability of the
// optional execution backends. Neither backend is required: the server starts
// regardless, so this is a diagnostic aid, not a gate.
func newDoctorCmd() *cobra.Command {
	var kubectlPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check local execution prerequisites",
		Long: `Probe the prerequisites for local kubectl execution: the kubectl binary
and a loadable kubeconfig. Remote execution through the AKS run-command API
needs neither; it only requires the caller to supply an Azure resource
context per request.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
			status := kubectl.CheckPrerequisites(cmd.Context(), kubectlPath, logger)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "kubectl binary:   %s\n", checkmark(status.KubectlAvailable))
			_, _ = fmt.Fprintf(out, "                  %s\n", status.KubectlDetail)
			_, _ = fmt.Fprintf(out, "kubeconfig:       %s\n", checkmark(status.KubeconfigAvailable))
			_, _ = fmt.Fprintf(out, "                  %s\n", status.KubeconfigDetail)

			if status.LocalExecutionReady() {
				_, _ = fmt.Fprintln(out, "local execution:  ready")
			} else {
				_, _ = fmt.Fprintln(out, "local execution:  unavailable (remote execution via request context still works)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kubectlPath, "kubectl-path", kubectl.DefaultKubectlPath,
		"Path to the kubectl binary used for local execution")

	return cmd
}

func checkmark(ok bool) string {
	if ok {
		return "ok"
	}
	return "missing"
}
