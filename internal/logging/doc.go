// Package logging provides structured logging utilities for the mcp-aks
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Credential masking (bearer tokens are never logged directly)
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "call_kubectl")
//	logger.Info("executing command",
//	    logging.Backend(logging.BackendLocal),
//	    logging.Command(args))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("extracted context",
//	    slog.String("access_token", logging.SanitizeToken(token)))
//
// # Security Considerations
//
// Bearer tokens pass through this server on every multi-tenant request. They
// must never appear in logs: SanitizeToken reports only the token length, as
// even partial token prefixes (like JWT headers) can aid attacks.
package logging
