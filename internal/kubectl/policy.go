package kubectl

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/giantswarm/mcp-aks/internal/logging"
)

// MutatingVerbs are the kubectl verbs treated as state-changing by the
// pre-dispatch policy gate.
var MutatingVerbs = []string{"delete", "apply", "create", "patch", "replace", "edit"}

// Policy is the pre-dispatch gate applied to every command string before it
// reaches a backend. A nil return allows execution; a non-nil error blocks it
// and is returned to the caller as a structured error.
type Policy interface {
	Check(args string) error
}

// mutatingVerb returns the first whitespace-delimited token of the command
// if it is a mutating verb.
func mutatingVerb(args string) (string, bool) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "", false
	}
	verb := strings.ToLower(fields[0])
	for _, m := range MutatingVerbs {
		if verb == m {
			return verb, true
		}
	}
	return "", false
}

// WarnOnlyPolicy logs a warning for mutating verbs and proceeds. This is the
// default gate. Use ApprovalPolicy to block instead.
type WarnOnlyPolicy struct {
	logger *slog.Logger
}

// NewWarnOnlyPolicy creates the advisory policy gate.
func NewWarnOnlyPolicy(logger *slog.Logger) *WarnOnlyPolicy {
	if logger == nil {
		logger = slog.Default()
	}
	return &WarnOnlyPolicy{logger: logger}
}

// Check implements Policy. It never blocks.
func (p *WarnOnlyPolicy) Check(args string) error {
	if verb, ok := mutatingVerb(args); ok {
		p.logger.Warn("executing potentially dangerous kubectl command",
			slog.String("verb", verb), logging.Command(args))
	}
	return nil
}

// ApprovalPolicy blocks mutating verbs unless they are explicitly allowed.
// It is the enforced counterpart to WarnOnlyPolicy.
type ApprovalPolicy struct {
	// AllowedOperations lists mutating verbs that may run without approval.
	AllowedOperations []string
}

// NewApprovalPolicy creates an enforcing policy gate with the given
// exceptions.
func NewApprovalPolicy(allowedOperations []string) *ApprovalPolicy {
	return &ApprovalPolicy{AllowedOperations: allowedOperations}
}

// Check implements Policy.
func (p *ApprovalPolicy) Check(args string) error {
	verb, ok := mutatingVerb(args)
	if !ok {
		return nil
	}

	for _, op := range p.AllowedOperations {
		if strings.EqualFold(op, verb) {
			return nil
		}
	}

	return fmt.Errorf("%s operations require approval and are blocked by the execution policy "+
		"(start the server with --policy warn to log and proceed instead)",
		cases.Title(language.English).String(verb))
}
