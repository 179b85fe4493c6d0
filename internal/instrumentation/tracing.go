package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the default tracer name for the mcp-aks package.
const TracerName = "github.com/giantswarm/mcp-aks"

// Span attribute keys for execution operations.
const (
	// SpanAttrTool is the MCP tool name.
	SpanAttrTool = "mcp.tool"

	// SpanAttrBackend is the execution backend (local or remote).
	SpanAttrBackend = "mcp.backend"

	// SpanAttrVerb is the first kubectl verb of the command.
	SpanAttrVerb = "k8s.verb"

	// SpanAttrExitCode is the command exit code.
	SpanAttrExitCode = "k8s.exit_code"
)

// StartExecutionSpan starts a span for one routed kubectl execution using the
// globally registered tracer provider.
func StartExecutionSpan(ctx context.Context, backend, verb string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, "kubectl.execute",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(SpanAttrBackend, backend),
			attribute.String(SpanAttrVerb, verb),
		))
}

// EndExecutionSpan records the outcome on the span and ends it.
func EndExecutionSpan(span trace.Span, exitCode int, errMsg string) {
	span.SetAttributes(attribute.Int(SpanAttrExitCode, exitCode))
	if errMsg != "" {
		span.SetStatus(codes.Error, errMsg)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
