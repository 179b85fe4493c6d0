package azure

import (
	"errors"
	"fmt"
)

// contextSchemaHint is appended to validation errors so callers know what a
// complete multi-tenant request context looks like.
const contextSchemaHint = "request context must include: cloud='azure', resource_id, access_token"

// ErrRemoteUnavailable indicates that no AKS run-command client is configured,
// so the remote execution path cannot be used. This is surfaced distinctly
// from ordinary execution failures so the caller gets an actionable message
// instead of a generic one.
var ErrRemoteUnavailable = errors.New(
	"remote AKS execution is not available: no run-command client is configured " +
		"(build the server with the Azure management client enabled, or omit the azure request context to use local kubectl)")

// ValidationError reports a malformed or incomplete multi-tenant request
// context. It is raised synchronously during context extraction and must
// surface to the caller as a terminal tool error.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid azure request context: %s: %s (%s)", e.Field, e.Reason, contextSchemaHint)
}

// newMissingFieldError reports a required field absent from an azure request context.
func newMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "required field is missing"}
}

// IsValidationError returns true if the error is a request context validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
