// Package cmd implements the command line interface for mcp-aks.
//
// The root command starts the MCP server by default; subcommands cover
// serving with explicit options, prerequisite diagnostics, version reporting
// and self-updating the binary.
package cmd
