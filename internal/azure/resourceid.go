package azure

import (
	"regexp"
	"strings"
)

// resourceIDRegex matches fully qualified Azure resource IDs of the form
// /subscriptions/{sub}/resourceGroups/{rg}/providers/{provider}/{resourceType}/{name}.
// Matching is case-insensitive and anchored: partial matches are rejected.
var resourceIDRegex = regexp.MustCompile(`(?i)^/subscriptions/(?P<subscription>[^/]+)` +
	`/resourceGroups/(?P<resource_group>[^/]+)` +
	`/providers/(?P<provider>[^/]+)` +
	`/(?P<resource_type>[^/]+)` +
	`/(?P<resource_name>[^/]+)$`)

// ResourceID holds the structural parts of an Azure resource ID that the
// execution path needs. The provider and resource type segments are matched
// but not retained; no semantic validation (e.g. GUID shape) is performed on
// the individual segments.
type ResourceID struct {
	SubscriptionID string
	ResourceGroup  string
	ResourceName   string
}

// ParseResourceID parses an Azure resource ID into its structural parts.
// It returns ok=false for empty or malformed input; the two cases are
// reported identically so that absence of input cannot be mistaken for a
// distinct error condition by callers.
func ParseResourceID(resourceID string) (ResourceID, bool) {
	match := resourceIDRegex.FindStringSubmatch(strings.TrimSpace(resourceID))
	if match == nil {
		return ResourceID{}, false
	}

	return ResourceID{
		SubscriptionID: match[resourceIDRegex.SubexpIndex("subscription")],
		ResourceGroup:  match[resourceIDRegex.SubexpIndex("resource_group")],
		ResourceName:   match[resourceIDRegex.SubexpIndex("resource_name")],
	}, true
}
