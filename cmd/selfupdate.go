package cmd

import (
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the GitHub repository releases are published from.
const githubRepoSlug = "giantswarm/mcp-aks"

// newSelfUpdateCmd creates the Cobra command for updating the binary in place.
func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update mcp-aks to the latest version",
		Long: `Check GitHub for a newer release of mcp-aks and replace the current
binary with it. Development builds cannot be updated this way.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			version := rootCmd.Version
			if version == "" || version == "dev" {
				return fmt.Errorf("cannot self-update a development version (version: %q)", version)
			}

			latest, err := selfupdate.UpdateSelf(cmd.Context(), version, selfupdate.ParseSlug(githubRepoSlug))
			if err != nil {
				return fmt.Errorf("failed to self-update: %w", err)
			}

			if latest.Version() == version {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "already running the latest version %s\n", version)
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated to version %s\n", latest.Version())
			return nil
		},
	}
}
