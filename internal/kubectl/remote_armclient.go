package kubectl

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armcontainerservice "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v6"

	"github.com/giantswarm/mcp-aks/internal/azure"
)

// NewARMRunCommandClientFactory returns a RunCommandClientFactory backed by
// the Azure SDK ManagedClustersClient. This is the production remote backend.
func NewARMRunCommandClientFactory() RunCommandClientFactory {
	return func(subscriptionID string, tokens azure.TokenProvider) (RunCommandClient, error) {
		client, err := armcontainerservice.NewManagedClustersClient(
			subscriptionID, &tokenCredential{tokens: tokens}, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create managed clusters client: %w", err)
		}
		return &armRunCommandClient{client: client}, nil
	}
}

// tokenCredential bridges an azure.TokenProvider to the azcore.TokenCredential
// interface the SDK clients require. It never validates the token; expiry and
// scope are whatever the provider reports.
type tokenCredential struct {
	tokens azure.TokenProvider
}

// GetToken implements azcore.TokenCredential.
func (c *tokenCredential) GetToken(ctx context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	tok, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return azcore.AccessToken{}, err
	}
	return azcore.AccessToken{Token: tok.Value, ExpiresOn: tok.ExpiresOn}, nil
}

// armRunCommandClient drives the AKS run-command long-running operation.
type armRunCommandClient struct {
	client *armcontainerservice.ManagedClustersClient
}

// RunCommand starts the run-command operation and polls it to completion.
// The context deadline set by the caller bounds the whole operation.
func (c *armRunCommandClient) RunCommand(ctx context.Context, resourceGroup, clusterName, command string) (*RunCommandStatus, error) {
	request := armcontainerservice.RunCommandRequest{
		Command: to.Ptr(command),
		Context: to.Ptr(""),
	}

	poller, err := c.client.BeginRunCommand(ctx, resourceGroup, clusterName, request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, err
	}

	status := &RunCommandStatus{}
	if props := resp.Properties; props != nil {
		status.ExitCode = props.ExitCode
		status.Logs = props.Logs
		if props.ProvisioningState != nil {
			status.ProvisioningState = *props.ProvisioningState
		}
		if props.Reason != nil {
			status.Reason = *props.Reason
		}
	}
	return status, nil
}
