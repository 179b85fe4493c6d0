// Package server provides the ServerContext that wires the execution router,
// configuration and logging together for the MCP server, plus the transport
// plumbing that carries the per-request multi-tenant context and the health
// endpoints used by Kubernetes probes.
package server
