// Package kubectl implements the kubectl execution core: a local executor
// that shells out to the kubectl binary, a remote executor that drives the
// Azure AKS run-command API, and the router that picks one per request.
//
// Both backends are normalized into a single CommandResult shape and the
// router converts that into the StructuredResult returned across the tool
// boundary. Execution failures are soft: they are captured inside the
// executors and reported as results, never as errors that cross the executor
// boundary. The one exception is a missing run-command client, which is a
// distinct dependency error so callers get an actionable message.
package kubectl
