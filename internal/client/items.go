package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// ItemsClient implements xminds.ItemOperations.
type ItemsClient struct {
	*EntityClient
}

// NewItemsClient creates a new items client.
func NewItemsClient(httpClient *http.Client) *ItemsClient {
	return &ItemsClient{
		EntityClient: newEntityClient(httpClient, entityOperations{
			listProperties:     xminds.OpListAllItemProperties,
			createProperty:     xminds.OpCreateItemProperty,
			getProperty:        xminds.OpGetItemProperty,
			deleteProperty:     xminds.OpDeleteItemProperty,
			get:                xminds.OpGetItem,
			createOrUpdate:     xminds.OpCreateOrUpdateItem,
			partialUpdate:      xminds.OpPartialUpdateItem,
			createOrUpdateBulk: xminds.OpCreateOrUpdateItemBulk,
			partialUpdateBulk:  xminds.OpPartialUpdateItemBulk,
			list:               xminds.OpListAllItems,
			listByID:           xminds.OpListAllItemsByID,
			idParam:            "item_id",
			single:             "item",
			plural:             "items",
			idsField:           "items_id",
		}),
	}
}

// ListAllItemProperties lists the item properties of the database.
func (c *ItemsClient) ListAllItemProperties(ctx context.Context) (*xminds.Value, error) {
	return c.listProperties(ctx)
}

// CreateItemProperty declares a new item property.
func (c *ItemsClient) CreateItemProperty(ctx context.Context, request *xminds.PropertyCreateRequest) (*xminds.Value, error) {
	return c.createProperty(ctx, request)
}

// GetItemProperty returns one item property.
func (c *ItemsClient) GetItemProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return c.getProperty(ctx, propertyName)
}

// DeleteItemProperty deletes one item property.
func (c *ItemsClient) DeleteItemProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return c.deleteProperty(ctx, propertyName)
}

// GetItem returns one item.
func (c *ItemsClient) GetItem(ctx context.Context, itemID string) (*xminds.Value, error) {
	return c.get(ctx, itemID)
}

// CreateOrUpdateItem replaces the properties of an item, creating it if needed.
func (c *ItemsClient) CreateOrUpdateItem(ctx context.Context, itemID string, item xminds.Record) (*xminds.Value, error) {
	return c.createOrUpdate(ctx, itemID, item)
}

// PartialUpdateItem updates the given properties of an item.
func (c *ItemsClient) PartialUpdateItem(ctx context.Context, itemID string, item xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return c.partialUpdate(ctx, itemID, item, createIfMissing)
}

// CreateOrUpdateItemBulk replaces many items at once.
func (c *ItemsClient) CreateOrUpdateItemBulk(ctx context.Context, items []xminds.Record) (*xminds.Value, error) {
	return c.createOrUpdateBulk(ctx, items)
}

// PartialUpdateItemBulk updates many items at once.
func (c *ItemsClient) PartialUpdateItemBulk(ctx context.Context, items []xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return c.partialUpdateBulk(ctx, items, createIfMissing)
}

// ListAllItems pages through items with a cursor.
func (c *ItemsClient) ListAllItems(ctx context.Context, opts *xminds.CursorOptions) (*xminds.Value, error) {
	return c.list(ctx, opts)
}

// ListAllItemsByID returns the items with the given ids.
func (c *ItemsClient) ListAllItemsByID(ctx context.Context, itemIDs []string) (*xminds.Value, error) {
	return c.listByID(ctx, itemIDs)
}
