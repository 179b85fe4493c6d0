// Package azure implements per-request Azure credential handling for
// multi-tenant AKS execution.
//
// Callers identify the target cluster with an Azure resource ID and supply an
// OAuth2 bearer token alongside it in the raw request context. This package
// parses and validates that context into a ResourceContext that the execution
// router can dispatch on. Tokens are held for the duration of one call only
// and are redacted from all log output and string representations.
package azure
