package aks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-aks/internal/kubectl"
	"github.com/giantswarm/mcp-aks/internal/server"
)

// requestContextMetaKey is the MCP request meta field carrying the raw
// multi-tenant request context on transports without HTTP headers.
const requestContextMetaKey = "request_context"

// handleCallKubectl executes one kubectl command through the routing core.
// All failures, including validation failures, are reported as tool results
// rather than protocol errors so the calling agent can reason about them.
func handleCallKubectl(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, _ := request.GetArguments()["args"].(string)
	raw := rawRequestContext(ctx, request)

	result := sc.Router().Execute(ctx, args, raw)

	payload, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}

	if result.Status == kubectl.StatusError {
		return mcp.NewToolResultError(string(payload)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// rawRequestContext resolves the caller-supplied multi-tenant context.
// It prefers the request meta field (stdio transport), then the request
// context populated by the HTTP transport's context function. The returned
// map is read-only input; its content is validated by the context extractor.
func rawRequestContext(ctx context.Context, request mcp.CallToolRequest) map[string]any {
	if meta := request.Params.Meta; meta != nil {
		if raw, ok := meta.AdditionalFields[requestContextMetaKey].(map[string]any); ok && len(raw) > 0 {
			return raw
		}
	}

	if raw, ok := server.RawRequestContextFromContext(ctx); ok {
		return raw
	}
	return nil
}
