package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRawRequestContext(t *testing.T) {
	raw := map[string]any{"cloud": "azure"}

	ctx := WithRawRequestContext(context.Background(), raw)
	got, ok := RawRequestContextFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, raw, got)
}

func TestWithRawRequestContext_EmptyMapIsNotStored(t *testing.T) {
	ctx := WithRawRequestContext(context.Background(), nil)
	_, ok := RawRequestContextFromContext(ctx)
	assert.False(t, ok)

	ctx = WithRawRequestContext(context.Background(), map[string]any{})
	_, ok = RawRequestContextFromContext(ctx)
	assert.False(t, ok)
}

func TestHTTPContextFunc(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected map[string]any
	}{
		{
			name:   "valid context header",
			header: `{"cloud":"azure","resource_id":"/subscriptions/s/resourceGroups/g/providers/p/managedClusters/c"}`,
			expected: map[string]any{
				"cloud":       "azure",
				"resource_id": "/subscriptions/s/resourceGroups/g/providers/p/managedClusters/c",
			},
		},
		{
			name:     "missing header",
			header:   "",
			expected: nil,
		},
		{
			name:     "malformed header is dropped",
			header:   "{not json",
			expected: nil,
		},
		{
			name:     "non-object header is dropped",
			header:   `["azure"]`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/mcp", nil)
			if tt.header != "" {
				r.Header.Set(RequestContextHeader, tt.header)
			}

			ctx := HTTPContextFunc(context.Background(), r)
			raw, ok := RawRequestContextFromContext(ctx)
			if tt.expected == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.expected, raw)
		})
	}
}
