package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// ListAllAccounts implements xminds.Client.ListAllAccounts.
func (c *Client) ListAllAccounts(ctx context.Context) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllAccounts, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.ListAllAccounts(ctx)
	})
}

// CreateIndividualAccount implements xminds.Client.CreateIndividualAccount.
func (c *Client) CreateIndividualAccount(ctx context.Context, request *xminds.IndividualAccountRequest) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateIndividualAccount, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.CreateIndividualAccount(ctx, request)
	})
}

// DeleteIndividualAccount implements xminds.Client.DeleteIndividualAccount.
func (c *Client) DeleteIndividualAccount(ctx context.Context, email string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpDeleteIndividualAccount, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.DeleteIndividualAccount(ctx, email)
	})
}

// CreateServiceAccount implements xminds.Client.CreateServiceAccount.
func (c *Client) CreateServiceAccount(ctx context.Context, request *xminds.ServiceAccountRequest) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateServiceAccount, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.CreateServiceAccount(ctx, request)
	})
}

// DeleteServiceAccount implements xminds.Client.DeleteServiceAccount.
func (c *Client) DeleteServiceAccount(ctx context.Context, serviceName string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpDeleteServiceAccount, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.DeleteServiceAccount(ctx, serviceName)
	})
}

// LoginAsIndividual implements xminds.Client.LoginAsIndividual.
func (c *Client) LoginAsIndividual(ctx context.Context, request *xminds.IndividualLoginRequest) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpLoginAsIndividual, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.LoginAsIndividual(ctx, request)
	})
}

// LoginAsService implements xminds.Client.LoginAsService.
func (c *Client) LoginAsService(ctx context.Context, request *xminds.ServiceLoginRequest) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpLoginAsService, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.LoginAsService(ctx, request)
	})
}

// LoginAsRoot implements xminds.Client.LoginAsRoot.
func (c *Client) LoginAsRoot(ctx context.Context, email, password string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpLoginAsRoot, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.LoginAsRoot(ctx, email, password)
	})
}

// RenewLoginWithRefreshToken implements xminds.Client.RenewLoginWithRefreshToken.
func (c *Client) RenewLoginWithRefreshToken(ctx context.Context, refreshToken string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpRenewLoginWithRefreshToken, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.RenewLoginWithRefreshToken(ctx, refreshToken)
	})
}

// ResendEmailVerificationCode implements xminds.Client.ResendEmailVerificationCode.
func (c *Client) ResendEmailVerificationCode(ctx context.Context, email string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpResendEmailVerificationCode, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.ResendEmailVerificationCode(ctx, email)
	})
}

// VerifyEmail implements xminds.Client.VerifyEmail.
func (c *Client) VerifyEmail(ctx context.Context, email, code string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpVerifyEmail, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.VerifyEmail(ctx, email, code)
	})
}

// DeleteCurrentAccount implements xminds.Client.DeleteCurrentAccount.
func (c *Client) DeleteCurrentAccount(ctx context.Context) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpDeleteCurrentAccount, NewAuthenticationClient, func(g *AuthenticationClient) (*xminds.Value, error) {
		return g.DeleteCurrentAccount(ctx)
	})
}

// CreateDatabase implements xminds.Client.CreateDatabase.
func (c *Client) CreateDatabase(ctx context.Context, request *xminds.DatabaseCreateRequest) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateDatabase, NewDatabaseClient, func(g *DatabaseClient) (*xminds.Value, error) {
		return g.CreateDatabase(ctx, request)
	})
}

// ListAllDatabases implements xminds.Client.ListAllDatabases.
func (c *Client) ListAllDatabases(ctx context.Context, opts *xminds.PageOptions) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllDatabases, NewDatabaseClient, func(g *DatabaseClient) (*xminds.Value, error) {
		return g.ListAllDatabases(ctx, opts)
	})
}

// CurrentDatabase implements xminds.Client.CurrentDatabase.
func (c *Client) CurrentDatabase(ctx context.Context) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCurrentDatabase, NewDatabaseClient, func(g *DatabaseClient) (*xminds.Value, error) {
		return g.CurrentDatabase(ctx)
	})
}

// DeleteCurrentDatabase implements xminds.Client.DeleteCurrentDatabase.
func (c *Client) DeleteCurrentDatabase(ctx context.Context) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpDeleteCurrentDatabase, NewDatabaseClient, func(g *DatabaseClient) (*xminds.Value, error) {
		return g.DeleteCurrentDatabase(ctx)
	})
}

// CurrentDatabaseStatus implements xminds.Client.CurrentDatabaseStatus.
func (c *Client) CurrentDatabaseStatus(ctx context.Context) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCurrentDatabaseStatus, NewDatabaseClient, func(g *DatabaseClient) (*xminds.Value, error) {
		return g.CurrentDatabaseStatus(ctx)
	})
}

// ListAllUserProperties implements xminds.Client.ListAllUserProperties.
func (c *Client) ListAllUserProperties(ctx context.Context) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllUserProperties, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.ListAllUserProperties(ctx)
	})
}

// CreateUserProperty implements xminds.Client.CreateUserProperty.
func (c *Client) CreateUserProperty(ctx context.Context, request *xminds.PropertyCreateRequest) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateUserProperty, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.CreateUserProperty(ctx, request)
	})
}

// GetUserProperty implements xminds.Client.GetUserProperty.
func (c *Client) GetUserProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpGetUserProperty, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.GetUserProperty(ctx, propertyName)
	})
}

// DeleteUserProperty implements xminds.Client.DeleteUserProperty.
func (c *Client) DeleteUserProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpDeleteUserProperty, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.DeleteUserProperty(ctx, propertyName)
	})
}

// GetUser implements xminds.Client.GetUser.
func (c *Client) GetUser(ctx context.Context, userID string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpGetUser, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.GetUser(ctx, userID)
	})
}

// CreateOrUpdateUser implements xminds.Client.CreateOrUpdateUser.
func (c *Client) CreateOrUpdateUser(ctx context.Context, userID string, user xminds.Record) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateOrUpdateUser, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.CreateOrUpdateUser(ctx, userID, user)
	})
}

// PartialUpdateUser implements xminds.Client.PartialUpdateUser.
func (c *Client) PartialUpdateUser(ctx context.Context, userID string, user xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpPartialUpdateUser, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.PartialUpdateUser(ctx, userID, user, createIfMissing)
	})
}

// CreateOrUpdateUserBulk implements xminds.Client.CreateOrUpdateUserBulk.
func (c *Client) CreateOrUpdateUserBulk(ctx context.Context, users []xminds.Record) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateOrUpdateUserBulk, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.CreateOrUpdateUserBulk(ctx, users)
	})
}

// PartialUpdateUserBulk implements xminds.Client.PartialUpdateUserBulk.
func (c *Client) PartialUpdateUserBulk(ctx context.Context, users []xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpPartialUpdateUserBulk, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.PartialUpdateUserBulk(ctx, users, createIfMissing)
	})
}

// ListAllUsers implements xminds.Client.ListAllUsers.
func (c *Client) ListAllUsers(ctx context.Context, opts *xminds.CursorOptions) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllUsers, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.ListAllUsers(ctx, opts)
	})
}

// ListAllUsersByID implements xminds.Client.ListAllUsersByID.
func (c *Client) ListAllUsersByID(ctx context.Context, userIDs []string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllUsersByID, NewUsersClient, func(g *UsersClient) (*xminds.Value, error) {
		return g.ListAllUsersByID(ctx, userIDs)
	})
}

// ListAllItemProperties implements xminds.Client.ListAllItemProperties.
func (c *Client) ListAllItemProperties(ctx context.Context) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllItemProperties, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.ListAllItemProperties(ctx)
	})
}

// CreateItemProperty implements xminds.Client.CreateItemProperty.
func (c *Client) CreateItemProperty(ctx context.Context, request *xminds.PropertyCreateRequest) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateItemProperty, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.CreateItemProperty(ctx, request)
	})
}

// GetItemProperty implements xminds.Client.GetItemProperty.
func (c *Client) GetItemProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpGetItemProperty, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.GetItemProperty(ctx, propertyName)
	})
}

// DeleteItemProperty implements xminds.Client.DeleteItemProperty.
func (c *Client) DeleteItemProperty(ctx context.Context, propertyName string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpDeleteItemProperty, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.DeleteItemProperty(ctx, propertyName)
	})
}

// GetItem implements xminds.Client.GetItem.
func (c *Client) GetItem(ctx context.Context, itemID string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpGetItem, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.GetItem(ctx, itemID)
	})
}

// CreateOrUpdateItem implements xminds.Client.CreateOrUpdateItem.
func (c *Client) CreateOrUpdateItem(ctx context.Context, itemID string, item xminds.Record) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateOrUpdateItem, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.CreateOrUpdateItem(ctx, itemID, item)
	})
}

// PartialUpdateItem implements xminds.Client.PartialUpdateItem.
func (c *Client) PartialUpdateItem(ctx context.Context, itemID string, item xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpPartialUpdateItem, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.PartialUpdateItem(ctx, itemID, item, createIfMissing)
	})
}

// CreateOrUpdateItemBulk implements xminds.Client.CreateOrUpdateItemBulk.
func (c *Client) CreateOrUpdateItemBulk(ctx context.Context, items []xminds.Record) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateOrUpdateItemBulk, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.CreateOrUpdateItemBulk(ctx, items)
	})
}

// PartialUpdateItemBulk implements xminds.Client.PartialUpdateItemBulk.
func (c *Client) PartialUpdateItemBulk(ctx context.Context, items []xminds.Record, createIfMissing bool) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpPartialUpdateItemBulk, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.PartialUpdateItemBulk(ctx, items, createIfMissing)
	})
}

// ListAllItems implements xminds.Client.ListAllItems.
func (c *Client) ListAllItems(ctx context.Context, opts *xminds.CursorOptions) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllItems, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.ListAllItems(ctx, opts)
	})
}

// ListAllItemsByID implements xminds.Client.ListAllItemsByID.
func (c *Client) ListAllItemsByID(ctx context.Context, itemIDs []string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllItemsByID, NewItemsClient, func(g *ItemsClient) (*xminds.Value, error) {
		return g.ListAllItemsByID(ctx, itemIDs)
	})
}

// CreateOrUpdateRating implements xminds.Client.CreateOrUpdateRating.
func (c *Client) CreateOrUpdateRating(ctx context.Context, userID, itemID string, rating float64, timestamp *int64) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateOrUpdateRating, NewRatingsClient, func(g *RatingsClient) (*xminds.Value, error) {
		return g.CreateOrUpdateRating(ctx, userID, itemID, rating, timestamp)
	})
}

// DeleteRating implements xminds.Client.DeleteRating.
func (c *Client) DeleteRating(ctx context.Context, userID, itemID string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpDeleteRating, NewRatingsClient, func(g *RatingsClient) (*xminds.Value, error) {
		return g.DeleteRating(ctx, userID, itemID)
	})
}

// ListAllRatingsForUser implements xminds.Client.ListAllRatingsForUser.
func (c *Client) ListAllRatingsForUser(ctx context.Context, userID string, opts *xminds.PageOptions) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllRatingsForUser, NewRatingsClient, func(g *RatingsClient) (*xminds.Value, error) {
		return g.ListAllRatingsForUser(ctx, userID, opts)
	})
}

// CreateOrUpdateRatingsForUserBulk implements xminds.Client.CreateOrUpdateRatingsForUserBulk.
func (c *Client) CreateOrUpdateRatingsForUserBulk(ctx context.Context, userID string, ratings []xminds.Rating) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateOrUpdateRatingsForUserBulk, NewRatingsClient, func(g *RatingsClient) (*xminds.Value, error) {
		return g.CreateOrUpdateRatingsForUserBulk(ctx, userID, ratings)
	})
}

// DeleteAllRatingsForUser implements xminds.Client.DeleteAllRatingsForUser.
func (c *Client) DeleteAllRatingsForUser(ctx context.Context, userID string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpDeleteAllRatingsForUser, NewRatingsClient, func(g *RatingsClient) (*xminds.Value, error) {
		return g.DeleteAllRatingsForUser(ctx, userID)
	})
}

// CreateOrUpdateRatingsBulk implements xminds.Client.CreateOrUpdateRatingsBulk.
func (c *Client) CreateOrUpdateRatingsBulk(ctx context.Context, ratings []xminds.Rating) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateOrUpdateRatingsBulk, NewRatingsClient, func(g *RatingsClient) (*xminds.Value, error) {
		return g.CreateOrUpdateRatingsBulk(ctx, ratings)
	})
}

// ListAllRatings implements xminds.Client.ListAllRatings.
func (c *Client) ListAllRatings(ctx context.Context, opts *xminds.CursorOptions) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListAllRatings, NewRatingsClient, func(g *RatingsClient) (*xminds.Value, error) {
		return g.ListAllRatings(ctx, opts)
	})
}

// CreateUserInteraction implements xminds.Client.CreateUserInteraction.
func (c *Client) CreateUserInteraction(ctx context.Context, userID, itemID, interactionType string, timestamp *int64) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateUserInteraction, NewInteractionsClient, func(g *InteractionsClient) (*xminds.Value, error) {
		return g.CreateUserInteraction(ctx, userID, itemID, interactionType, timestamp)
	})
}

// CreateUserInteractionsBulk implements xminds.Client.CreateUserInteractionsBulk.
func (c *Client) CreateUserInteractionsBulk(ctx context.Context, interactions []xminds.Interaction) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpCreateUserInteractionsBulk, NewInteractionsClient, func(g *InteractionsClient) (*xminds.Value, error) {
		return g.CreateUserInteractionsBulk(ctx, interactions)
	})
}

// ListSimilarItemRecommendations implements xminds.Client.ListSimilarItemRecommendations.
func (c *Client) ListSimilarItemRecommendations(ctx context.Context, itemID string, opts *xminds.SimilarItemsOptions) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListSimilarItemRecommendations, NewRecommendationsClient, func(g *RecommendationsClient) (*xminds.Value, error) {
		return g.ListSimilarItemRecommendations(ctx, itemID, opts)
	})
}

// ListSessionBasedItemRecommendations implements xminds.Client.ListSessionBasedItemRecommendations.
func (c *Client) ListSessionBasedItemRecommendations(ctx context.Context, opts *xminds.SessionRecommendationOptions) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListSessionBasedItemRecommendations, NewRecommendationsClient, func(g *RecommendationsClient) (*xminds.Value, error) {
		return g.ListSessionBasedItemRecommendations(ctx, opts)
	})
}

// ListProfileBasedItemRecommendations implements xminds.Client.ListProfileBasedItemRecommendations.
func (c *Client) ListProfileBasedItemRecommendations(ctx context.Context, userID string, opts *xminds.ProfileRecommendationOptions) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListProfileBasedItemRecommendations, NewRecommendationsClient, func(g *RecommendationsClient) (*xminds.Value, error) {
		return g.ListProfileBasedItemRecommendations(ctx, userID, opts)
	})
}

// TriggerBackgroundTask implements xminds.Client.TriggerBackgroundTask.
func (c *Client) TriggerBackgroundTask(ctx context.Context, taskName string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpTriggerBackgroundTask, NewBackgroundTasksClient, func(g *BackgroundTasksClient) (*xminds.Value, error) {
		return g.TriggerBackgroundTask(ctx, taskName)
	})
}

// ListRecentBackgroundTasks implements xminds.Client.ListRecentBackgroundTasks.
func (c *Client) ListRecentBackgroundTasks(ctx context.Context, taskName string) (*xminds.Value, error) {
	return call(ctx, c, xminds.OpListRecentBackgroundTasks, NewBackgroundTasksClient, func(g *BackgroundTasksClient) (*xminds.Value, error) {
		return g.ListRecentBackgroundTasks(ctx, taskName)
	})
}
