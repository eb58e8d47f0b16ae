package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// RecommendationsClient implements xminds.RecommendationOperations.
type RecommendationsClient struct {
	httpClient *http.Client
}

// NewRecommendationsClient creates a new recommendations client.
func NewRecommendationsClient(httpClient *http.Client) *RecommendationsClient {
	return &RecommendationsClient{
		httpClient: httpClient,
	}
}

// ListSimilarItemRecommendations returns items similar to itemID.
func (c *RecommendationsClient) ListSimilarItemRecommendations(ctx context.Context, itemID string, opts *xminds.SimilarItemsOptions) (*xminds.Value, error) {
	if opts == nil {
		opts = &xminds.SimilarItemsOptions{}
	}

	return execute(ctx, c.httpClient, xminds.OpListSimilarItemRecommendations, map[string]string{"item_id": itemID}, map[string]any{
		"amt":     opts.Amount,
		"cursor":  opts.Cursor,
		"filters": opts.Filters,
	}, nil)
}

// ListSessionBasedItemRecommendations recommends items for an anonymous
// session described by its ratings and properties.
func (c *RecommendationsClient) ListSessionBasedItemRecommendations(ctx context.Context, opts *xminds.SessionRecommendationOptions) (*xminds.Value, error) {
	if opts == nil {
		opts = &xminds.SessionRecommendationOptions{}
	}

	return execute(ctx, c.httpClient, xminds.OpListSessionBasedItemRecommendations, nil, nil, map[string]any{
		"amt":                 opts.Amount,
		"cursor":              opts.Cursor,
		"filters":             opts.Filters,
		"ratings":             opts.Ratings,
		"user_properties":     opts.UserProperties,
		"exclude_rated_items": opts.ExcludeRatedItems,
	})
}

// ListProfileBasedItemRecommendations recommends items for a known user.
func (c *RecommendationsClient) ListProfileBasedItemRecommendations(ctx context.Context, userID string, opts *xminds.ProfileRecommendationOptions) (*xminds.Value, error) {
	if opts == nil {
		opts = &xminds.ProfileRecommendationOptions{}
	}

	return execute(ctx, c.httpClient, xminds.OpListProfileBasedItemRecommendations, map[string]string{"user_id": userID}, map[string]any{
		"amt":                 opts.Amount,
		"cursor":              opts.Cursor,
		"filters":             opts.Filters,
		"exclude_rated_items": opts.ExcludeRatedItems,
	}, nil)
}
