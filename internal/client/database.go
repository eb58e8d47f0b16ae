package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// DatabaseClient implements xminds.DatabaseOperations.
type DatabaseClient struct {
	httpClient *http.Client
}

// NewDatabaseClient creates a new database client.
func NewDatabaseClient(httpClient *http.Client) *DatabaseClient {
	return &DatabaseClient{
		httpClient: httpClient,
	}
}

// CreateDatabase creates a database.
func (c *DatabaseClient) CreateDatabase(ctx context.Context, request *xminds.DatabaseCreateRequest) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpCreateDatabase, nil, nil, map[string]any{
		"name":         request.Name,
		"description":  request.Description,
		"item_id_type": request.ItemIDType,
		"user_id_type": request.UserIDType,
	})
}

// ListAllDatabases lists the databases of the organization.
func (c *DatabaseClient) ListAllDatabases(ctx context.Context, opts *xminds.PageOptions) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpListAllDatabases, nil, pageQuery(opts), nil)
}

// CurrentDatabase returns the database the session is bound to.
func (c *DatabaseClient) CurrentDatabase(ctx context.Context) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpCurrentDatabase, nil, nil, nil)
}

// DeleteCurrentDatabase deletes the database the session is bound to.
func (c *DatabaseClient) DeleteCurrentDatabase(ctx context.Context) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpDeleteCurrentDatabase, nil, nil, nil)
}

// CurrentDatabaseStatus returns the readiness of the current database.
func (c *DatabaseClient) CurrentDatabaseStatus(ctx context.Context) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpCurrentDatabaseStatus, nil, nil, nil)
}

func pageQuery(opts *xminds.PageOptions) map[string]any {
	if opts == nil {
		return nil
	}

	return map[string]any{
		"page": opts.Page,
		"amt":  opts.Amount,
	}
}

func cursorQuery(opts *xminds.CursorOptions) map[string]any {
	if opts == nil {
		return nil
	}

	return map[string]any{
		"amt":    opts.Amount,
		"cursor": opts.Cursor,
	}
}
