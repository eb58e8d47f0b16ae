package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// RatingsClient implements xminds.RatingOperations.
type RatingsClient struct {
	httpClient *http.Client
}

// NewRatingsClient creates a new ratings client.
func NewRatingsClient(httpClient *http.Client) *RatingsClient {
	return &RatingsClient{
		httpClient: httpClient,
	}
}

// CreateOrUpdateRating sets the rating of a user for an item.
func (c *RatingsClient) CreateOrUpdateRating(ctx context.Context, userID, itemID string, rating float64, timestamp *int64) (*xminds.Value, error) {
	path := map[string]string{"user_id": userID, "item_id": itemID}

	return execute(ctx, c.httpClient, xminds.OpCreateOrUpdateRating, path, nil, map[string]any{
		"rating":    rating,
		"timestamp": timestamp,
	})
}

// DeleteRating removes the rating of a user for an item.
func (c *RatingsClient) DeleteRating(ctx context.Context, userID, itemID string) (*xminds.Value, error) {
	path := map[string]string{"user_id": userID, "item_id": itemID}

	return execute(ctx, c.httpClient, xminds.OpDeleteRating, path, nil, nil)
}

// ListAllRatingsForUser lists the ratings of one user.
func (c *RatingsClient) ListAllRatingsForUser(ctx context.Context, userID string, opts *xminds.PageOptions) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpListAllRatingsForUser, map[string]string{"user_id": userID}, pageQuery(opts), nil)
}

// CreateOrUpdateRatingsForUserBulk sets many ratings of one user.
func (c *RatingsClient) CreateOrUpdateRatingsForUserBulk(ctx context.Context, userID string, ratings []xminds.Rating) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpCreateOrUpdateRatingsForUserBulk, map[string]string{"user_id": userID}, nil, map[string]any{
		"ratings": ratings,
	})
}

// DeleteAllRatingsForUser removes every rating of one user.
func (c *RatingsClient) DeleteAllRatingsForUser(ctx context.Context, userID string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpDeleteAllRatingsForUser, map[string]string{"user_id": userID}, nil, nil)
}

// CreateOrUpdateRatingsBulk sets ratings across users.
func (c *RatingsClient) CreateOrUpdateRatingsBulk(ctx context.Context, ratings []xminds.Rating) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpCreateOrUpdateRatingsBulk, nil, nil, map[string]any{
		"ratings": ratings,
	})
}

// ListAllRatings pages through every rating with a cursor.
func (c *RatingsClient) ListAllRatings(ctx context.Context, opts *xminds.CursorOptions) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpListAllRatings, nil, cursorQuery(opts), nil)
}
