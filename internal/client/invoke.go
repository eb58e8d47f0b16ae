package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

type handler func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error)

// Invoke implements xminds.Client.Invoke. Arguments are checked against the
// operation's required and optional names before anything is sent.
func (c *Client) Invoke(ctx context.Context, name xminds.Operation, args xminds.Args) (*xminds.Value, error) {
	spec, ok := xminds.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", xminds.ErrUnknownOperation, name)
	}

	err := checkArgs(spec, args)
	if err != nil {
		return nil, err
	}

	h, ok := handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", xminds.ErrUnknownOperation, name)
	}

	return h(ctx, c, &argReader{op: name, args: args})
}

func checkArgs(spec xminds.OperationSpec, args xminds.Args) error {
	known := make(map[string]bool, len(spec.Required)+len(spec.Optional))

	for _, key := range spec.Required {
		known[key] = true

		if value, ok := args[key]; !ok || value == nil {
			return fmt.Errorf("%w: %s requires %s", xminds.ErrMissingArgument, spec.Name, key)
		}
	}

	for _, key := range spec.PathParams() {
		if blank(args[key]) {
			return fmt.Errorf("%w: %s requires a non-empty %s", xminds.ErrMissingArgument, spec.Name, key)
		}
	}

	for _, key := range spec.Optional {
		known[key] = true
	}

	var unknown []string

	for key := range args {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)

		return fmt.Errorf("%w: %s does not accept %v", xminds.ErrInvalidArgument, spec.Name, unknown)
	}

	return nil
}

var handlers = map[xminds.Operation]handler{
	// authentication
	xminds.OpListAllAccounts: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		return c.ListAllAccounts(ctx)
	},
	xminds.OpCreateIndividualAccount: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		request := &xminds.IndividualAccountRequest{
			Email:     r.str("email"),
			Password:  r.str("password"),
			Role:      r.str("role"),
			FirstName: r.str("first_name"),
			LastName:  r.str("last_name"),
		}

		return r.run(func() (*xminds.Value, error) { return c.CreateIndividualAccount(ctx, request) })
	},
	xminds.OpDeleteIndividualAccount: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		email := r.str("email")

		return r.run(func() (*xminds.Value, error) { return c.DeleteIndividualAccount(ctx, email) })
	},
	xminds.OpCreateServiceAccount: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		request := &xminds.ServiceAccountRequest{
			ServiceName: r.str("service_name"),
			Password:    r.str("password"),
			Role:        r.str("role"),
		}

		return r.run(func() (*xminds.Value, error) { return c.CreateServiceAccount(ctx, request) })
	},
	xminds.OpDeleteServiceAccount: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		serviceName := r.str("service_name")

		return r.run(func() (*xminds.Value, error) { return c.DeleteServiceAccount(ctx, serviceName) })
	},
	xminds.OpLoginAsIndividual: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		request := &xminds.IndividualLoginRequest{
			Email:             r.str("email"),
			Password:          r.str("password"),
			DatabaseID:        r.str("database_id"),
			FrontendUserID:    r.str("frontend_user_id"),
			FrontendSessionID: r.str("frontend_session_id"),
		}

		return r.run(func() (*xminds.Value, error) { return c.LoginAsIndividual(ctx, request) })
	},
	xminds.OpLoginAsService: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		request := &xminds.ServiceLoginRequest{
			ServiceName:       r.str("service_name"),
			Password:          r.str("password"),
			DatabaseID:        r.str("database_id"),
			FrontendUserID:    r.str("frontend_user_id"),
			FrontendSessionID: r.str("frontend_session_id"),
		}

		return r.run(func() (*xminds.Value, error) { return c.LoginAsService(ctx, request) })
	},
	xminds.OpLoginAsRoot: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		email, password := r.str("email"), r.str("password")

		return r.run(func() (*xminds.Value, error) { return c.LoginAsRoot(ctx, email, password) })
	},
	xminds.OpRenewLoginWithRefreshToken: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		refreshToken := r.str("refresh_token")

		return r.run(func() (*xminds.Value, error) { return c.RenewLoginWithRefreshToken(ctx, refreshToken) })
	},
	xminds.OpResendEmailVerificationCode: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		email := r.str("email")

		return r.run(func() (*xminds.Value, error) { return c.ResendEmailVerificationCode(ctx, email) })
	},
	xminds.OpVerifyEmail: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		email, code := r.str("email"), r.str("code")

		return r.run(func() (*xminds.Value, error) { return c.VerifyEmail(ctx, email, code) })
	},
	xminds.OpDeleteCurrentAccount: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		return c.DeleteCurrentAccount(ctx)
	},

	// database
	xminds.OpCreateDatabase: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		request := &xminds.DatabaseCreateRequest{
			Name:        r.str("database_name"),
			Description: r.str("description"),
			ItemIDType:  r.str("item_id_type"),
			UserIDType:  r.str("user_id_type"),
		}

		return r.run(func() (*xminds.Value, error) { return c.CreateDatabase(ctx, request) })
	},
	xminds.OpListAllDatabases: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		opts := &xminds.PageOptions{Page: r.optInt("page"), Amount: r.optInt("amount")}

		return r.run(func() (*xminds.Value, error) { return c.ListAllDatabases(ctx, opts) })
	},
	xminds.OpCurrentDatabase: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		return c.CurrentDatabase(ctx)
	},
	xminds.OpDeleteCurrentDatabase: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		return c.DeleteCurrentDatabase(ctx)
	},
	xminds.OpCurrentDatabaseStatus: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		return c.CurrentDatabaseStatus(ctx)
	},

	// users data and properties
	xminds.OpListAllUserProperties: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		return c.ListAllUserProperties(ctx)
	},
	xminds.OpCreateUserProperty: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		request := propertyRequest(r)

		return r.run(func() (*xminds.Value, error) { return c.CreateUserProperty(ctx, request) })
	},
	xminds.OpGetUserProperty: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		name := r.str("property_name")

		return r.run(func() (*xminds.Value, error) { return c.GetUserProperty(ctx, name) })
	},
	xminds.OpDeleteUserProperty: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		name := r.str("property_name")

		return r.run(func() (*xminds.Value, error) { return c.DeleteUserProperty(ctx, name) })
	},
	xminds.OpGetUser: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID := r.str("user_id")

		return r.run(func() (*xminds.Value, error) { return c.GetUser(ctx, userID) })
	},
	xminds.OpCreateOrUpdateUser: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID, user := r.str("user_id"), r.record("user")

		return r.run(func() (*xminds.Value, error) { return c.CreateOrUpdateUser(ctx, userID, user) })
	},
	xminds.OpPartialUpdateUser: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID, user, create := r.str("user_id"), r.record("user"), r.boolean("create_if_missing")

		return r.run(func() (*xminds.Value, error) { return c.PartialUpdateUser(ctx, userID, user, create) })
	},
	xminds.OpCreateOrUpdateUserBulk: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		users := r.records("users")

		return r.run(func() (*xminds.Value, error) { return c.CreateOrUpdateUserBulk(ctx, users) })
	},
	xminds.OpPartialUpdateUserBulk: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		users, create := r.records("users"), r.boolean("create_if_missing")

		return r.run(func() (*xminds.Value, error) { return c.PartialUpdateUserBulk(ctx, users, create) })
	},
	xminds.OpListAllUsers: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		opts := cursorOptions(r)

		return r.run(func() (*xminds.Value, error) { return c.ListAllUsers(ctx, opts) })
	},
	xminds.OpListAllUsersByID: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		ids := r.stringList("user_ids")

		return r.run(func() (*xminds.Value, error) { return c.ListAllUsersByID(ctx, ids) })
	},

	// items data and properties
	xminds.OpListAllItemProperties: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		return c.ListAllItemProperties(ctx)
	},
	xminds.OpCreateItemProperty: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		request := propertyRequest(r)

		return r.run(func() (*xminds.Value, error) { return c.CreateItemProperty(ctx, request) })
	},
	xminds.OpGetItemProperty: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		name := r.str("property_name")

		return r.run(func() (*xminds.Value, error) { return c.GetItemProperty(ctx, name) })
	},
	xminds.OpDeleteItemProperty: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		name := r.str("property_name")

		return r.run(func() (*xminds.Value, error) { return c.DeleteItemProperty(ctx, name) })
	},
	xminds.OpGetItem: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		itemID := r.str("item_id")

		return r.run(func() (*xminds.Value, error) { return c.GetItem(ctx, itemID) })
	},
	xminds.OpCreateOrUpdateItem: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		itemID, item := r.str("item_id"), r.record("item")

		return r.run(func() (*xminds.Value, error) { return c.CreateOrUpdateItem(ctx, itemID, item) })
	},
	xminds.OpPartialUpdateItem: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		itemID, item, create := r.str("item_id"), r.record("item"), r.boolean("create_if_missing")

		return r.run(func() (*xminds.Value, error) { return c.PartialUpdateItem(ctx, itemID, item, create) })
	},
	xminds.OpCreateOrUpdateItemBulk: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		items := r.records("items")

		return r.run(func() (*xminds.Value, error) { return c.CreateOrUpdateItemBulk(ctx, items) })
	},
	xminds.OpPartialUpdateItemBulk: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		items, create := r.records("items"), r.boolean("create_if_missing")

		return r.run(func() (*xminds.Value, error) { return c.PartialUpdateItemBulk(ctx, items, create) })
	},
	xminds.OpListAllItems: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		opts := cursorOptions(r)

		return r.run(func() (*xminds.Value, error) { return c.ListAllItems(ctx, opts) })
	},
	xminds.OpListAllItemsByID: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		ids := r.stringList("item_ids")

		return r.run(func() (*xminds.Value, error) { return c.ListAllItemsByID(ctx, ids) })
	},

	// user ratings
	xminds.OpCreateOrUpdateRating: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID, itemID := r.str("user_id"), r.str("item_id")
		rating, timestamp := r.float("rating"), r.optInt64("timestamp")

		return r.run(func() (*xminds.Value, error) {
			return c.CreateOrUpdateRating(ctx, userID, itemID, rating, timestamp)
		})
	},
	xminds.OpDeleteRating: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID, itemID := r.str("user_id"), r.str("item_id")

		return r.run(func() (*xminds.Value, error) { return c.DeleteRating(ctx, userID, itemID) })
	},
	xminds.OpListAllRatingsForUser: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID := r.str("user_id")
		opts := &xminds.PageOptions{Page: r.optInt("page"), Amount: r.optInt("amount")}

		return r.run(func() (*xminds.Value, error) { return c.ListAllRatingsForUser(ctx, userID, opts) })
	},
	xminds.OpCreateOrUpdateRatingsForUserBulk: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID, ratings := r.str("user_id"), r.ratings("ratings")

		return r.run(func() (*xminds.Value, error) { return c.CreateOrUpdateRatingsForUserBulk(ctx, userID, ratings) })
	},
	xminds.OpDeleteAllRatingsForUser: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID := r.str("user_id")

		return r.run(func() (*xminds.Value, error) { return c.DeleteAllRatingsForUser(ctx, userID) })
	},
	xminds.OpCreateOrUpdateRatingsBulk: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		ratings := r.ratings("ratings")

		return r.run(func() (*xminds.Value, error) { return c.CreateOrUpdateRatingsBulk(ctx, ratings) })
	},
	xminds.OpListAllRatings: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		opts := cursorOptions(r)

		return r.run(func() (*xminds.Value, error) { return c.ListAllRatings(ctx, opts) })
	},

	// user interactions
	xminds.OpCreateUserInteraction: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID, itemID := r.str("user_id"), r.str("item_id")
		interactionType, timestamp := r.str("interaction_type"), r.optInt64("timestamp")

		return r.run(func() (*xminds.Value, error) {
			return c.CreateUserInteraction(ctx, userID, itemID, interactionType, timestamp)
		})
	},
	xminds.OpCreateUserInteractionsBulk: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		interactions := r.interactions("interactions")

		return r.run(func() (*xminds.Value, error) { return c.CreateUserInteractionsBulk(ctx, interactions) })
	},

	// recommendation
	xminds.OpListSimilarItemRecommendations: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		itemID := r.str("item_id")
		opts := &xminds.SimilarItemsOptions{
			Amount:  r.optInt("amount"),
			Cursor:  r.optString("cursor"),
			Filters: r.stringList("filters"),
		}

		return r.run(func() (*xminds.Value, error) { return c.ListSimilarItemRecommendations(ctx, itemID, opts) })
	},
	xminds.OpListSessionBasedItemRecommendations: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		opts := &xminds.SessionRecommendationOptions{
			Amount:            r.optInt("amount"),
			Cursor:            r.optString("cursor"),
			Filters:           r.stringList("filters"),
			Ratings:           r.ratings("ratings"),
			UserProperties:    r.record("user_properties"),
			ExcludeRatedItems: r.boolean("exclude_rated_items"),
		}

		return r.run(func() (*xminds.Value, error) { return c.ListSessionBasedItemRecommendations(ctx, opts) })
	},
	xminds.OpListProfileBasedItemRecommendations: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		userID := r.str("user_id")
		opts := &xminds.ProfileRecommendationOptions{
			Amount:            r.optInt("amount"),
			Cursor:            r.optString("cursor"),
			Filters:           r.stringList("filters"),
			ExcludeRatedItems: r.boolean("exclude_rated_items"),
		}

		return r.run(func() (*xminds.Value, error) {
			return c.ListProfileBasedItemRecommendations(ctx, userID, opts)
		})
	},

	// background tasks
	xminds.OpTriggerBackgroundTask: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		taskName := r.str("task_name")

		return r.run(func() (*xminds.Value, error) { return c.TriggerBackgroundTask(ctx, taskName) })
	},
	xminds.OpListRecentBackgroundTasks: func(ctx context.Context, c *Client, r *argReader) (*xminds.Value, error) {
		taskName := r.str("task_name")

		return r.run(func() (*xminds.Value, error) { return c.ListRecentBackgroundTasks(ctx, taskName) })
	},
}

// blank reports whether a path argument would leave an empty URL segment.
func blank(value any) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case *string:
		return v == nil || *v == ""
	default:
		return false
	}
}

func propertyRequest(r *argReader) *xminds.PropertyCreateRequest {
	return &xminds.PropertyCreateRequest{
		PropertyName: r.str("property_name"),
		ValueType:    r.str("value_type"),
		Repeated:     r.boolean("repeated"),
	}
}

func cursorOptions(r *argReader) *xminds.CursorOptions {
	return &xminds.CursorOptions{Amount: r.optInt("amount"), Cursor: r.optString("cursor")}
}
