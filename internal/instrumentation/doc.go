// Package instrumentation provides Prometheus metrics and OpenTelemetry
// tracing helpers for the execution path.
//
// Metrics count tool executions by backend and status and observe their
// duration; they are exposed on the HTTP transport's /metrics endpoint.
// Tracing uses the globally registered tracer provider: the server does not
// configure an exporter itself, so spans are no-ops unless the host process
// installs a provider.
package instrumentation
