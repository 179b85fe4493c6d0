package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// RequestContextHeader is the HTTP header carrying the JSON-encoded
// multi-tenant request context on HTTP transports. The calling service sets
// it per request; it is never produced by the agent.
const RequestContextHeader = "X-Request-Context"

// rawContextKey is the context key for the per-request raw context map.
type rawContextKey struct{}

// WithRawRequestContext returns a context carrying the raw multi-tenant
// request context map. Used by transports to hand the caller-supplied
// security context to tool handlers without widening the tool schema.
func WithRawRequestContext(ctx context.Context, raw map[string]any) context.Context {
	if len(raw) == 0 {
		return ctx
	}
	return context.WithValue(ctx, rawContextKey{}, raw)
}

// RawRequestContextFromContext retrieves the raw request context map, if any.
func RawRequestContextFromContext(ctx context.Context) (map[string]any, bool) {
	raw, ok := ctx.Value(rawContextKey{}).(map[string]any)
	return raw, ok
}

// HTTPContextFunc extracts the request context header from an incoming HTTP
// request and attaches it to the request context. Malformed headers are
// dropped with a warning; validation of the content happens later, in the
// context extractor, where failures surface to the caller.
func HTTPContextFunc(ctx context.Context, r *http.Request) context.Context {
	header := r.Header.Get(RequestContextHeader)
	if header == "" {
		return ctx
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(header), &raw); err != nil {
		slog.Warn("ignoring malformed request context header", slog.String("error", err.Error()))
		return ctx
	}

	return WithRawRequestContext(ctx, raw)
}
