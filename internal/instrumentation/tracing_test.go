package instrumentation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionSpanLifecycle(t *testing.T) {
	// Without a configured tracer provider the global tracer is a no-op;
	// the span lifecycle must still be safe to drive.
	ctx, span := StartExecutionSpan(context.Background(), "local", "get")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	assert.NotPanics(t, func() {
		EndExecutionSpan(span, 0, "")
	})

	_, span = StartExecutionSpan(context.Background(), "remote", "delete")
	assert.NotPanics(t, func() {
		EndExecutionSpan(span, 1, "kubectl command failed (exit code 1): forbidden")
	})
}
