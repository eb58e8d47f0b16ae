package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// InteractionsClient implements xminds.InteractionOperations.
type InteractionsClient struct {
	httpClient *http.Client
}

// NewInteractionsClient creates a new interactions client.
func NewInteractionsClient(httpClient *http.Client) *InteractionsClient {
	return &InteractionsClient{
		httpClient: httpClient,
	}
}

// CreateUserInteraction records one interaction of a user with an item.
func (c *InteractionsClient) CreateUserInteraction(ctx context.Context, userID, itemID, interactionType string, timestamp *int64) (*xminds.Value, error) {
	path := map[string]string{"user_id": userID, "item_id": itemID}

	return execute(ctx, c.httpClient, xminds.OpCreateUserInteraction, path, nil, map[string]any{
		"interaction_type": interactionType,
		"timestamp":        timestamp,
	})
}

// CreateUserInteractionsBulk records many interactions at once.
func (c *InteractionsClient) CreateUserInteractionsBulk(ctx context.Context, interactions []xminds.Interaction) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpCreateUserInteractionsBulk, nil, nil, map[string]any{
		"interactions": interactions,
	})
}
