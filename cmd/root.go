package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the mcp-aks application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mcp-aks",
	Short: "MCP server for multi-tenant AKS kubectl execution",
	Long: `mcp-aks is a Model Context Protocol (MCP) server that exposes a generic
kubectl execution tool with multi-tenant Azure AKS support. Requests that
carry an Azure resource context (resource ID plus bearer token) are executed
remotely through the AKS run-command API; requests without one fall back to
the locally configured kubectl binary. Credentials are supplied per request
and are never exposed to the calling agent.

When run without subcommands, it starts the MCP server (equivalent to 'mcp-aks serve').`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This is called from the main package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mcp-aks version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newDoctorCmd())
}
