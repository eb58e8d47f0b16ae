package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// UsersClient implements xminds.UserOperations.
type UsersClient struct {
	*EntityClient
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		EntityClient: newEntityClient(httpClient, entityOperations{
			listProperties:     xminds.OpListAllUserProperties,
			createProperty:     xminds.OpCreateUserProperty,
			getProperty:        xminds.OpGetUserProperty,
			deleteProperty:     xminds.OpDeleteUserProperty,
			get:                xminds.OpGetUser,
			createOrUpdate:     xminds.OpCreateOrUpdateUser,
			partialUpdate:      xminds.OpPartialUpdateUser,
			createOrUpdateBulk: xminds.OpCreateOrUpdateUserBulk,
			partialUpdateBulk:  xminds.OpPartialUpdateUserBulk,
			list:               xminds.OpListAllUsers,
			listByID:           xminds.OpListAllUsersByID,
			idParam:            "user_id",
			single:             "user",
			plural:             "users",
			idsField:           "users_id",
		}),
	}
}

// ListAllUserProperties lists the user properties of the database.
func (c *UsersClient) ListAllUserProperties(ctx context.Context) (*xminds.Value, error) {
	return c.listProperties(ctx)
}

// CreateUserProperty declares a new user property.
func (c *UsersClient) CreateUserProperty(ctx context.Context, request *xminds.PropertyCreateRequest) (*xminds.Value, error) {
	return c.createProperty(ctx, request)
}

// GetUserProperty returns one user property.
func (c *UsersClient) GetUserProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return c.getProperty(ctx, propertyName)
}

// DeleteUserProperty deletes one user property.
func (c *UsersClient) DeleteUserProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return c.deleteProperty(ctx, propertyName)
}

// GetUser returns one user.
func (c *UsersClient) GetUser(ctx context.Context, userID string) (*xminds.Value, error) {
	return c.get(ctx, userID)
}

// CreateOrUpdateUser replaces the properties of a user, creating it if needed.
func (c *UsersClient) CreateOrUpdateUser(ctx context.Context, userID string, user xminds.Record) (*xminds.Value, error) {
	return c.createOrUpdate(ctx, userID, user)
}

// PartialUpdateUser updates the given properties of a user.
func (c *UsersClient) PartialUpdateUser(ctx context.Context, userID string, user xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return c.partialUpdate(ctx, userID, user, createIfMissing)
}

// CreateOrUpdateUserBulk replaces many users at once.
func (c *UsersClient) CreateOrUpdateUserBulk(ctx context.Context, users []xminds.Record) (*xminds.Value, error) {
	return c.createOrUpdateBulk(ctx, users)
}

// PartialUpdateUserBulk updates many users at once.
func (c *UsersClient) PartialUpdateUserBulk(ctx context.Context, users []xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return c.partialUpdateBulk(ctx, users, createIfMissing)
}

// ListAllUsers pages through users with a cursor.
func (c *UsersClient) ListAllUsers(ctx context.Context, opts *xminds.CursorOptions) (*xminds.Value, error) {
	return c.list(ctx, opts)
}

// ListAllUsersByID returns the users with the given ids.
func (c *UsersClient) ListAllUsersByID(ctx context.Context, userIDs []string) (*xminds.Value, error) {
	return c.listByID(ctx, userIDs)
}
