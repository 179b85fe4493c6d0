package aks

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-aks/internal/server"
)

// ToolCallKubectl is the name of the generic kubectl execution tool.
const ToolCallKubectl = "call_kubectl"

// RegisterKubectlTools registers the kubectl execution tools with the MCP server.
func RegisterKubectlTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	callKubectlTool := mcp.NewTool(ToolCallKubectl,
		mcp.WithDescription(
			"Execute kubectl commands to query Kubernetes resources. "+
				"For Azure multi-tenant clusters, uses the AKS run-command API. "+
				"Otherwise uses local kubectl. "+
				"Supports all standard kubectl commands for reading cluster state "+
				"(get, describe, logs, etc.). "+
				"DO NOT include 'kubectl' prefix in the args parameter."),
		mcp.WithString("args",
			mcp.Required(),
			mcp.Description(
				"kubectl command arguments (e.g., 'get pod api-server -n prod -o json'). "+
					"DO NOT include 'kubectl' prefix. "+
					"Use '-o json' or '-o yaml' for structured output when querying resources. "+
					"Examples: "+
					"'get pods -n production -l app=api', "+
					"'describe pod api-server-xyz -n production', "+
					"'logs deployment/checkout-service -n prod --tail=100'"),
		),
	)

	s.AddTool(callKubectlTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCallKubectl(ctx, request, sc)
	})

	return nil
}
