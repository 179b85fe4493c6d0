package kubectl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-aks/internal/azure"
)

// fakeLocalRunner returns a canned result and records the arguments it saw.
type fakeLocalRunner struct {
	result CommandResult
	called bool
	args   string
}

func (f *fakeLocalRunner) Run(_ context.Context, args string) CommandResult {
	f.called = true
	f.args = args
	return f.result
}

// fakeRemoteRunner returns a canned result and records the context it saw.
type fakeRemoteRunner struct {
	result CommandResult
	err    error
	called bool
	rc     *azure.ResourceContext
	args   string
}

func (f *fakeRemoteRunner) Run(_ context.Context, rc *azure.ResourceContext, args string) (CommandResult, error) {
	f.called = true
	f.rc = rc
	f.args = args
	return f.result, f.err
}

func validRawContext() map[string]any {
	return map[string]any{
		"cloud": "azure",
		"resource_id": "/subscriptions/sub-123/resourceGroups/rg-test" +
			"/providers/Microsoft.ContainerService/managedClusters/cluster-test",
		"access_token": "token-123",
		"tenant_id":    "tenant-123",
	}
}

func newTestRouter(local *fakeLocalRunner, remote *fakeRemoteRunner) *Router {
	return NewRouter(local, remote, NewWarnOnlyPolicy(discardLogger()), discardLogger())
}

func TestRouter_EmptyArgs(t *testing.T) {
	local := &fakeLocalRunner{}
	remote := &fakeRemoteRunner{}
	router := newTestRouter(local, remote)

	for _, args := range []string{"", "   "} {
		result := router.Execute(context.Background(), args, nil)

		assert.Equal(t, StatusError, result.Status)
		assert.Contains(t, result.Error, "missing required parameter 'args'")
		assert.False(t, local.called, "no execution may be attempted")
		assert.False(t, remote.called, "no execution may be attempted")
	}
}

func TestRouter_LocalSuccessWithStructuredOutput(t *testing.T) {
	local := &fakeLocalRunner{result: CommandResult{
		ExitCode: 0,
		Stdout:   `{"apiVersion":"v1"}`,
	}}
	router := newTestRouter(local, &fakeRemoteRunner{})

	result := router.Execute(context.Background(), "get pods -o json", nil)

	assert.Equal(t, StatusSuccess, result.Status)
	require.True(t, local.called)
	assert.Equal(t, "get pods -o json", local.args)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "v1", data["apiVersion"])

	require.NotNil(t, result.ReturnCode)
	assert.Equal(t, 0, *result.ReturnCode)
	assert.Equal(t, "get pods -o json", result.Params["args"])
}

func TestRouter_LocalFailure(t *testing.T) {
	local := &fakeLocalRunner{result: CommandResult{
		ExitCode: 1,
		Stderr:   `Error from server (NotFound): pods "missing" not found`,
	}}
	router := newTestRouter(local, &fakeRemoteRunner{})

	result := router.Execute(context.Background(), "get pod missing", nil)

	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Error, "exit code 1")
	assert.Contains(t, result.Error, "NotFound")
	require.NotNil(t, result.ReturnCode)
	assert.Equal(t, 1, *result.ReturnCode)
}

func TestRouter_FailureWithoutStderr(t *testing.T) {
	local := &fakeLocalRunner{result: CommandResult{ExitCode: 2}}
	router := newTestRouter(local, &fakeRemoteRunner{})

	result := router.Execute(context.Background(), "get pods", nil)

	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Error, "unknown error")
}

func TestRouter_RemoteDispatchWithContext(t *testing.T) {
	remote := &fakeRemoteRunner{result: CommandResult{ExitCode: 0, Stdout: "ok"}}
	local := &fakeLocalRunner{}
	router := newTestRouter(local, remote)

	result := router.Execute(context.Background(), "get pods", validRawContext())

	assert.Equal(t, StatusSuccess, result.Status)
	require.True(t, remote.called)
	assert.False(t, local.called)
	require.NotNil(t, remote.rc)
	assert.Equal(t, "sub-123", remote.rc.SubscriptionID)
	assert.Equal(t, "cluster-test", remote.rc.ResourceName)
	assert.Equal(t, "tenant-123", remote.rc.TenantID)
}

func TestRouter_ValidationErrorStopsExecution(t *testing.T) {
	remote := &fakeRemoteRunner{}
	local := &fakeLocalRunner{}
	router := newTestRouter(local, remote)

	raw := map[string]any{"cloud": "azure"} // resource_id and access_token missing

	result := router.Execute(context.Background(), "get pods", raw)

	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Error, "resource_id")
	assert.False(t, local.called)
	assert.False(t, remote.called)
}

func TestRouter_RemoteUnavailable(t *testing.T) {
	remote := &fakeRemoteRunner{err: azure.ErrRemoteUnavailable}
	router := newTestRouter(&fakeLocalRunner{}, remote)

	result := router.Execute(context.Background(), "get pods", validRawContext())

	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Error, "remote AKS execution is not available")
	assert.Nil(t, result.ReturnCode)
}

func TestRouter_ApprovalPolicyBlocksBeforeDispatch(t *testing.T) {
	local := &fakeLocalRunner{}
	remote := &fakeRemoteRunner{}
	router := NewRouter(local, remote, NewApprovalPolicy(nil), discardLogger())

	result := router.Execute(context.Background(), "delete pod api-server", validRawContext())

	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Error, "require approval")
	assert.False(t, local.called)
	assert.False(t, remote.called)
}

func TestRouter_OtherCloudFallsBackToLocal(t *testing.T) {
	local := &fakeLocalRunner{result: CommandResult{ExitCode: 0, Stdout: "ok"}}
	remote := &fakeRemoteRunner{}
	router := newTestRouter(local, remote)

	result := router.Execute(context.Background(), "get pods", map[string]any{"cloud": "aws"})

	assert.Equal(t, StatusSuccess, result.Status)
	assert.True(t, local.called)
	assert.False(t, remote.called)
}

func TestRouter_ResultSerializesCleanly(t *testing.T) {
	local := &fakeLocalRunner{result: CommandResult{ExitCode: 0, Stdout: "plain text"}}
	router := newTestRouter(local, &fakeRemoteRunner{})

	result := router.Execute(context.Background(), "get pods", nil)

	payload, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"status":"success"`)
	assert.Contains(t, string(payload), `"return_code":0`)
	assert.NotContains(t, string(payload), `"error"`)
}

func TestRouter_ErrorNeverContainsToken(t *testing.T) {
	remote := &fakeRemoteRunner{result: CommandResult{
		ExitCode: -1,
		Stderr:   "AKS run-command failed: connection reset",
	}}
	router := newTestRouter(&fakeLocalRunner{}, remote)

	result := router.Execute(context.Background(), "get pods", validRawContext())

	payload, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "token-123")
}
