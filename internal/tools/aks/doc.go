// Package aks registers the generic kubectl MCP tool with multi-tenant AKS
// support. One tool replaces a catalogue of per-operation kubectl tools: the
// model constructs the kubectl arguments and the execution router decides per
// request whether they run remotely through the AKS run-command API or
// locally through the kubectl binary.
package aks
