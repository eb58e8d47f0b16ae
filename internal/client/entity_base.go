package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// entityOperations names the catalog operations and payload keys of one
// entity kind. Users and items share the same shape.
type entityOperations struct {
	listProperties     xminds.Operation
	createProperty     xminds.Operation
	getProperty        xminds.Operation
	deleteProperty     xminds.Operation
	get                xminds.Operation
	createOrUpdate     xminds.Operation
	partialUpdate      xminds.Operation
	createOrUpdateBulk xminds.Operation
	partialUpdateBulk  xminds.Operation
	list               xminds.Operation
	listByID           xminds.Operation

	idParam  string
	single   string
	plural   string
	idsField string
}

// EntityClient provides the shared data and property calls for users and items.
type EntityClient struct {
	httpClient *http.Client
	ops        entityOperations
}

func newEntityClient(httpClient *http.Client, ops entityOperations) *EntityClient {
	return &EntityClient{
		httpClient: httpClient,
		ops:        ops,
	}
}

func (c *EntityClient) listProperties(ctx context.Context) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.listProperties, nil, nil, nil)
}

func (c *EntityClient) createProperty(ctx context.Context, request *xminds.PropertyCreateRequest) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.createProperty, nil, nil, map[string]any{
		"property_name": request.PropertyName,
		"value_type":    request.ValueType,
		"repeated":      request.Repeated,
	})
}

func (c *EntityClient) getProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.getProperty, map[string]string{"property_name": propertyName}, nil, nil)
}

func (c *EntityClient) deleteProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.deleteProperty, map[string]string{"property_name": propertyName}, nil, nil)
}

func (c *EntityClient) get(ctx context.Context, id string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.get, map[string]string{c.ops.idParam: id}, nil, nil)
}

func (c *EntityClient) createOrUpdate(ctx context.Context, id string, record xminds.Record) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.createOrUpdate, map[string]string{c.ops.idParam: id}, nil, map[string]any{
		c.ops.single: record,
	})
}

func (c *EntityClient) partialUpdate(ctx context.Context, id string, record xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.partialUpdate, map[string]string{c.ops.idParam: id}, nil, map[string]any{
		c.ops.single:        record,
		"create_if_missing": createIfMissing,
	})
}

func (c *EntityClient) createOrUpdateBulk(ctx context.Context, records []xminds.Record) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.createOrUpdateBulk, nil, nil, map[string]any{
		c.ops.plural: records,
	})
}

func (c *EntityClient) partialUpdateBulk(ctx context.Context, records []xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.partialUpdateBulk, nil, nil, map[string]any{
		c.ops.plural:        records,
		"create_if_missing": createIfMissing,
	})
}

func (c *EntityClient) list(ctx context.Context, opts *xminds.CursorOptions) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.list, nil, cursorQuery(opts), nil)
}

func (c *EntityClient) listByID(ctx context.Context, ids []string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, c.ops.listByID, nil, nil, map[string]any{
		c.ops.idsField: ids,
	})
}
