package azure

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResourceID = "/subscriptions/sub-123/resourceGroups/rg-test" +
	"/providers/Microsoft.ContainerService/managedClusters/cluster-test"

// testLogger returns a debug-level logger writing into the returned buffer so
// tests can assert on redaction behavior.
func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

func TestExtractResourceContext_NoContext(t *testing.T) {
	logger, _ := testLogger()

	for _, raw := range []map[string]any{nil, {}} {
		rc, err := ExtractResourceContext(raw, logger)
		require.NoError(t, err)
		assert.Nil(t, rc)
	}
}

func TestExtractResourceContext_OtherCloud(t *testing.T) {
	logger, _ := testLogger()

	rc, err := ExtractResourceContext(map[string]any{"cloud": "aws"}, logger)
	require.NoError(t, err)
	assert.Nil(t, rc)
}

func TestExtractResourceContext_MissingResourceID(t *testing.T) {
	logger, _ := testLogger()

	rc, err := ExtractResourceContext(map[string]any{
		"cloud":        "azure",
		"access_token": "token-123",
	}, logger)

	require.Error(t, err)
	assert.Nil(t, rc)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "resource_id")
}

func TestExtractResourceContext_MissingAccessToken(t *testing.T) {
	logger, _ := testLogger()

	rc, err := ExtractResourceContext(map[string]any{
		"cloud":       "azure",
		"resource_id": testResourceID,
	}, logger)

	require.Error(t, err)
	assert.Nil(t, rc)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "access_token")
}

func TestExtractResourceContext_UnparseableResourceID(t *testing.T) {
	logger, _ := testLogger()

	rc, err := ExtractResourceContext(map[string]any{
		"cloud":        "azure",
		"resource_id":  "invalid-id",
		"access_token": "t",
	}, logger)

	require.Error(t, err)
	assert.Nil(t, rc)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "failed to parse")
	assert.Contains(t, err.Error(), "invalid-id")
}

func TestExtractResourceContext_Success(t *testing.T) {
	logger, buf := testLogger()

	rc, err := ExtractResourceContext(map[string]any{
		"cloud":        "azure",
		"resource_id":  testResourceID,
		"access_token": "token-123",
		"tenant_id":    "tenant-123",
	}, logger)

	require.NoError(t, err)
	require.NotNil(t, rc)
	assert.Equal(t, "azure", rc.Cloud)
	assert.Equal(t, testResourceID, rc.ResourceID)
	assert.Equal(t, "token-123", rc.AccessToken)
	assert.Equal(t, "sub-123", rc.SubscriptionID)
	assert.Equal(t, "rg-test", rc.ResourceGroup)
	assert.Equal(t, "cluster-test", rc.ResourceName)
	assert.Equal(t, "tenant-123", rc.TenantID)

	// The token must never reach the logs.
	assert.NotContains(t, buf.String(), "token-123")
}

func TestExtractResourceContext_UppercaseCloudNormalized(t *testing.T) {
	logger, _ := testLogger()

	rc, err := ExtractResourceContext(map[string]any{
		"cloud":        "Azure",
		"resource_id":  testResourceID,
		"access_token": "t",
	}, logger)

	require.NoError(t, err)
	require.NotNil(t, rc)
	assert.Equal(t, "azure", rc.Cloud)
}

func TestExtractResourceContext_OptionalTenantID(t *testing.T) {
	logger, _ := testLogger()

	rc, err := ExtractResourceContext(map[string]any{
		"cloud":        "azure",
		"resource_id":  testResourceID,
		"access_token": "t",
	}, logger)

	require.NoError(t, err)
	require.NotNil(t, rc)
	assert.Empty(t, rc.TenantID)
}

func TestResourceContext_StringRedactsToken(t *testing.T) {
	rc := &ResourceContext{
		Cloud:          "azure",
		ResourceID:     testResourceID,
		AccessToken:    "token-123",
		SubscriptionID: "sub-123",
		ResourceGroup:  "rg-test",
		ResourceName:   "cluster-test",
		TenantID:       "tenant-123",
	}

	s := rc.String()
	assert.NotContains(t, s, "token-123")
	assert.Contains(t, s, "***REDACTED***")
	assert.Contains(t, s, "sub-123")
	assert.Contains(t, s, "rg-test")
	assert.Contains(t, s, "cluster-test")
}

func TestValidationError_MentionsSchema(t *testing.T) {
	err := newMissingFieldError("resource_id")
	assert.Contains(t, err.Error(), "cloud='azure'")
	assert.Contains(t, err.Error(), "access_token")
}
