package xminds

import "context"

// AuthenticationOperations covers accounts and logins.
type AuthenticationOperations interface {
	ListAllAccounts(ctx context.Context) (*Value, error)
	CreateIndividualAccount(ctx context.Context, request *IndividualAccountRequest) (*Value, error)
	DeleteIndividualAccount(ctx context.Context, email string) (*Value, error)
	CreateServiceAccount(ctx context.Context, request *ServiceAccountRequest) (*Value, error)
	DeleteServiceAccount(ctx context.Context, serviceName string) (*Value, error)
	LoginAsIndividual(ctx context.Context, request *IndividualLoginRequest) (*Value, error)
	LoginAsService(ctx context.Context, request *ServiceLoginRequest) (*Value, error)
	LoginAsRoot(ctx context.Context, email, password string) (*Value, error)
	RenewLoginWithRefreshToken(ctx context.Context, refreshToken string) (*Value, error)
	ResendEmailVerificationCode(ctx context.Context, email string) (*Value, error)
	VerifyEmail(ctx context.Context, email, code string) (*Value, error)
	DeleteCurrentAccount(ctx context.Context) (*Value, error)
}

// DatabaseOperations covers database management.
type DatabaseOperations interface {
	CreateDatabase(ctx context.Context, request *DatabaseCreateRequest) (*Value, error)
	ListAllDatabases(ctx context.Context, opts *PageOptions) (*Value, error)
	CurrentDatabase(ctx context.Context) (*Value, error)
	DeleteCurrentDatabase(ctx context.Context) (*Value, error)
	CurrentDatabaseStatus(ctx context.Context) (*Value, error)
}

// UserOperations covers user data and user properties.
type UserOperations interface {
	ListAllUserProperties(ctx context.Context) (*Value, error)
	CreateUserProperty(ctx context.Context, request *PropertyCreateRequest) (*Value, error)
	GetUserProperty(ctx context.Context, propertyName string) (*Value, error)
	DeleteUserProperty(ctx context.Context, propertyName string) (*Value, error)
	GetUser(ctx context.Context, userID string) (*Value, error)
	CreateOrUpdateUser(ctx context.Context, userID string, user Record) (*Value, error)
	PartialUpdateUser(ctx context.Context, userID string, user Record, createIfMissing bool) (*Value, error)
	CreateOrUpdateUserBulk(ctx context.Context, users []Record) (*Value, error)
	PartialUpdateUserBulk(ctx context.Context, users []Record, createIfMissing bool) (*Value, error)
	ListAllUsers(ctx context.Context, opts *CursorOptions) (*Value, error)
	ListAllUsersByID(ctx context.Context, userIDs []string) (*Value, error)
}

// ItemOperations covers item data and item properties.
type ItemOperations interface {
	ListAllItemProperties(ctx context.Context) (*Value, error)
	CreateItemProperty(ctx context.Context, request *PropertyCreateRequest) (*Value, error)
	GetItemProperty(ctx context.Context, propertyName string) (*Value, error)
	DeleteItemProperty(ctx context.Context, propertyName string) (*Value, error)
	GetItem(ctx context.Context, itemID string) (*Value, error)
	CreateOrUpdateItem(ctx context.Context, itemID string, item Record) (*Value, error)
	PartialUpdateItem(ctx context.Context, itemID string, item Record, createIfMissing bool) (*Value, error)
	CreateOrUpdateItemBulk(ctx context.Context, items []Record) (*Value, error)
	PartialUpdateItemBulk(ctx context.Context, items []Record, createIfMissing bool) (*Value, error)
	ListAllItems(ctx context.Context, opts *CursorOptions) (*Value, error)
	ListAllItemsByID(ctx context.Context, itemIDs []string) (*Value, error)
}

// RatingOperations covers user ratings.
type RatingOperations interface {
	CreateOrUpdateRating(ctx context.Context, userID, itemID string, rating float64, timestamp *int64) (*Value, error)
	DeleteRating(ctx context.Context, userID, itemID string) (*Value, error)
	ListAllRatingsForUser(ctx context.Context, userID string, opts *PageOptions) (*Value, error)
	CreateOrUpdateRatingsForUserBulk(ctx context.Context, userID string, ratings []Rating) (*Value, error)
	DeleteAllRatingsForUser(ctx context.Context, userID string) (*Value, error)
	CreateOrUpdateRatingsBulk(ctx context.Context, ratings []Rating) (*Value, error)
	ListAllRatings(ctx context.Context, opts *CursorOptions) (*Value, error)
}

// InteractionOperations covers user interactions.
type InteractionOperations interface {
	CreateUserInteraction(ctx context.Context, userID, itemID, interactionType string, timestamp *int64) (*Value, error)
	CreateUserInteractionsBulk(ctx context.Context, interactions []Interaction) (*Value, error)
}

// RecommendationOperations covers item recommendations.
type RecommendationOperations interface {
	ListSimilarItemRecommendations(ctx context.Context, itemID string, opts *SimilarItemsOptions) (*Value, error)
	ListSessionBasedItemRecommendations(ctx context.Context, opts *SessionRecommendationOptions) (*Value, error)
	ListProfileBasedItemRecommendations(ctx context.Context, userID string, opts *ProfileRecommendationOptions) (*Value, error)
}

// BackgroundTaskOperations covers background tasks.
type BackgroundTaskOperations interface {
	TriggerBackgroundTask(ctx context.Context, taskName string) (*Value, error)
	ListRecentBackgroundTasks(ctx context.Context, taskName string) (*Value, error)
}

// Args carries named arguments for Client.Invoke, keyed by the parameter
// names of the operation's OperationSpec.
type Args map[string]any

// Client is the authenticated façade over every logical operation. Each call
// that fails with JwtTokenExpired is retried once after refreshing the
// credential.
//
// A Client serializes credential refresh internally, but a call already in
// flight on a token that another goroutine has just replaced is not
// cancelled; it fails with JwtTokenExpired and takes its own single retry.
type Client interface {
	AuthenticationOperations
	DatabaseOperations
	UserOperations
	ItemOperations
	RatingOperations
	InteractionOperations
	RecommendationOperations
	BackgroundTaskOperations

	// Invoke runs an operation by name with named arguments.
	Invoke(ctx context.Context, name Operation, args Args) (*Value, error)
	// Credential returns a copy of the current credential.
	Credential() Credential
	// Role returns the role the client logged in as.
	Role() Role
}
