package azure

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/giantswarm/mcp-aks/internal/logging"
)

// CloudAzure is the cloud identifier that triggers remote routing. Any other
// value in the request context falls back to local execution.
const CloudAzure = "azure"

// Request context keys. Keys are lower-case strings in a JSON-compatible map.
const (
	KeyCloud       = "cloud"
	KeyResourceID  = "resource_id"
	KeyAccessToken = "access_token"
	KeyTenantID    = "tenant_id"
)

// ResourceContext is a validated, immutable per-request Azure security
// context. It exists only if the cloud is azure, resource_id and access_token
// are both present, and the resource ID parses. It is constructed once per
// request and held only for the duration of that call.
type ResourceContext struct {
	Cloud          string
	ResourceID     string
	AccessToken    string
	SubscriptionID string
	ResourceGroup  string
	ResourceName   string
	TenantID       string
}

// String returns a representation safe for logging: the access token is
// always redacted.
func (c *ResourceContext) String() string {
	return fmt.Sprintf("ResourceContext(cloud=%s, subscription_id=%s, resource_group=%s, "+
		"resource_name=%s, tenant_id=%s, access_token=***REDACTED***)",
		c.Cloud, c.SubscriptionID, c.ResourceGroup, c.ResourceName, c.TenantID)
}

// ExtractResourceContext extracts and validates an Azure resource context
// from the raw per-request context map.
//
// Outcomes:
//   - (nil, nil): no multi-tenant context. The raw context is absent or names
//     a cloud other than azure; the caller should use local execution.
//   - (nil, *ValidationError): the context requests azure but is incomplete
//     or its resource_id does not parse. This must surface to the caller.
//   - (ctx, nil): a fully validated context, including the optional tenant_id.
func ExtractResourceContext(raw map[string]any, logger *slog.Logger) (*ResourceContext, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if len(raw) == 0 {
		logger.Debug("no request context provided, using local execution")
		return nil, nil
	}

	cloud := strings.ToLower(stringField(raw, KeyCloud))
	if cloud != CloudAzure {
		logger.Debug("request context is not for azure, using local execution",
			slog.String("cloud", cloud))
		return nil, nil
	}

	resourceID := stringField(raw, KeyResourceID)
	if resourceID == "" {
		return nil, newMissingFieldError(KeyResourceID)
	}

	accessToken := stringField(raw, KeyAccessToken)
	if accessToken == "" {
		return nil, newMissingFieldError(KeyAccessToken)
	}

	parsed, ok := ParseResourceID(resourceID)
	if !ok {
		logger.Warn("failed to parse azure resource_id", slog.String("resource_id", resourceID))
		return nil, &ValidationError{
			Field: KeyResourceID,
			Reason: fmt.Sprintf("failed to parse %q, expected format: "+
				"/subscriptions/{sub}/resourceGroups/{rg}/providers/{provider}/{resourceType}/{name}", resourceID),
		}
	}

	rc := &ResourceContext{
		Cloud:          cloud,
		ResourceID:     resourceID,
		AccessToken:    accessToken,
		SubscriptionID: parsed.SubscriptionID,
		ResourceGroup:  parsed.ResourceGroup,
		ResourceName:   parsed.ResourceName,
		TenantID:       stringField(raw, KeyTenantID),
	}

	logger.Info("extracted azure resource context",
		slog.String("subscription_id", rc.SubscriptionID),
		slog.String("resource_group", rc.ResourceGroup),
		slog.String("resource_name", rc.ResourceName),
		slog.String("access_token", logging.SanitizeToken(rc.AccessToken)))

	return rc, nil
}

// stringField reads a string value from the raw context, tolerating absent
// keys and non-string values.
func stringField(raw map[string]any, key string) string {
	v, _ := raw[key].(string)
	return v
}
