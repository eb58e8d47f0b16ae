package xminds

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Group names a family of operations sharing a remote resource.
type Group string

// Resource groups.
const (
	GroupAuthentication         Group = "authentication"
	GroupDatabase               Group = "database"
	GroupUsersDataAndProperties Group = "users_data_and_properties"
	GroupItemsDataAndProperties Group = "items_data_and_properties"
	GroupUserRatings            Group = "user_ratings"
	GroupUserInteractions       Group = "user_interactions"
	GroupRecommendation         Group = "recommendation"
	GroupBackgroundTasks        Group = "background_tasks"
)

// Operation is the name of one logical API operation.
type Operation string

// Authentication operations.
const (
	OpListAllAccounts             Operation = "list_all_accounts"
	OpCreateIndividualAccount     Operation = "create_individual_account"
	OpDeleteIndividualAccount     Operation = "delete_individual_account"
	OpCreateServiceAccount        Operation = "create_service_account"
	OpDeleteServiceAccount        Operation = "delete_service_account"
	OpLoginAsIndividual           Operation = "login_as_individual"
	OpLoginAsService              Operation = "login_as_service"
	OpLoginAsRoot                 Operation = "login_as_root"
	OpRenewLoginWithRefreshToken  Operation = "renew_login_with_refresh_token"
	OpResendEmailVerificationCode Operation = "resend_email_verification_code"
	OpVerifyEmail                 Operation = "verify_email"
	OpDeleteCurrentAccount        Operation = "delete_current_account"
)

// Database operations.
const (
	OpCreateDatabase        Operation = "create_database"
	OpListAllDatabases      Operation = "list_all_databases"
	OpCurrentDatabase       Operation = "current_database"
	OpDeleteCurrentDatabase Operation = "delete_current_database"
	OpCurrentDatabaseStatus Operation = "current_database_status"
)

// User data and property operations.
const (
	OpListAllUserProperties  Operation = "list_all_user_properties"
	OpCreateUserProperty     Operation = "create_user_property"
	OpGetUserProperty        Operation = "get_user_property"
	OpDeleteUserProperty     Operation = "delete_user_property"
	OpGetUser                Operation = "get_user"
	OpCreateOrUpdateUser     Operation = "create_or_update_user"
	OpPartialUpdateUser      Operation = "partial_update_user"
	OpCreateOrUpdateUserBulk Operation = "create_or_update_user_bulk"
	OpPartialUpdateUserBulk  Operation = "partial_update_user_bulk"
	OpListAllUsers           Operation = "list_all_users"
	OpListAllUsersByID       Operation = "list_all_users_by_id"
)

// Item data and property operations.
const (
	OpListAllItemProperties  Operation = "list_all_item_properties"
	OpCreateItemProperty     Operation = "create_item_property"
	OpGetItemProperty        Operation = "get_item_property"
	OpDeleteItemProperty     Operation = "delete_item_property"
	OpGetItem                Operation = "get_item"
	OpCreateOrUpdateItem     Operation = "create_or_update_item"
	OpPartialUpdateItem      Operation = "partial_update_item"
	OpCreateOrUpdateItemBulk Operation = "create_or_update_item_bulk"
	OpPartialUpdateItemBulk  Operation = "partial_update_item_bulk"
	OpListAllItems           Operation = "list_all_items"
	OpListAllItemsByID       Operation = "list_all_items_by_id"
)

// Rating operations.
const (
	OpCreateOrUpdateRating             Operation = "create_or_update_rating"
	OpDeleteRating                     Operation = "delete_rating"
	OpListAllRatingsForUser            Operation = "list_all_ratings_for_user"
	OpCreateOrUpdateRatingsForUserBulk Operation = "create_or_update_ratings_for_user_bulk"
	OpDeleteAllRatingsForUser          Operation = "delete_all_ratings_for_user"
	OpCreateOrUpdateRatingsBulk        Operation = "create_or_update_ratings_bulk"
	OpListAllRatings                   Operation = "list_all_ratings"
)

// Interaction, recommendation and background task operations.
const (
	OpCreateUserInteraction               Operation = "create_user_interaction"
	OpCreateUserInteractionsBulk          Operation = "create_user_interactions_bulk"
	OpListSimilarItemRecommendations      Operation = "list_similar_item_recommendations"
	OpListSessionBasedItemRecommendations Operation = "list_session_based_item_recommendations"
	OpListProfileBasedItemRecommendations Operation = "list_profile_based_item_recommendations"
	OpTriggerBackgroundTask               Operation = "trigger_background_task"
	OpListRecentBackgroundTasks           Operation = "list_recent_background_tasks"
)

// OperationSpec is the fixed HTTP shape of a logical operation. Path is a
// template relative to the API endpoint; {name} segments are filled from the
// argument of the same name.
type OperationSpec struct {
	Name            Operation
	Group           Group
	Method          string
	Path            string
	Required        []string
	Optional        []string
	Unauthenticated bool
}

var catalog = []OperationSpec{
	{OpListAllAccounts, GroupAuthentication, http.MethodGet, "organizations/current/accounts/", nil, nil, false},
	{OpCreateIndividualAccount, GroupAuthentication, http.MethodPost, "accounts/individual/", []string{"email", "password", "role", "first_name", "last_name"}, nil, false},
	{OpDeleteIndividualAccount, GroupAuthentication, http.MethodDelete, "accounts/individual/", []string{"email"}, nil, false},
	{OpCreateServiceAccount, GroupAuthentication, http.MethodPost, "accounts/service/", []string{"service_name", "password", "role"}, nil, false},
	{OpDeleteServiceAccount, GroupAuthentication, http.MethodDelete, "accounts/service/", []string{"service_name"}, nil, false},
	{OpLoginAsIndividual, GroupAuthentication, http.MethodPost, "login/individual/", []string{"email", "password", "database_id"}, []string{"frontend_user_id", "frontend_session_id"}, true},
	{OpLoginAsService, GroupAuthentication, http.MethodPost, "login/service/", []string{"service_name", "password", "database_id"}, []string{"frontend_user_id", "frontend_session_id"}, true},
	{OpLoginAsRoot, GroupAuthentication, http.MethodPost, "login/root/", []string{"email", "password"}, nil, true},
	{OpRenewLoginWithRefreshToken, GroupAuthentication, http.MethodPost, "login/refresh-token/", []string{"refresh_token"}, nil, true},
	{OpResendEmailVerificationCode, GroupAuthentication, http.MethodPut, "accounts/resend-verification-code/", []string{"email"}, nil, false},
	{OpVerifyEmail, GroupAuthentication, http.MethodPost, "accounts/verify/", []string{"email", "code"}, nil, false},
	{OpDeleteCurrentAccount, GroupAuthentication, http.MethodDelete, "accounts/", nil, nil, false},

	{OpCreateDatabase, GroupDatabase, http.MethodPost, "databases/", []string{"database_name", "description", "item_id_type", "user_id_type"}, nil, false},
	{OpListAllDatabases, GroupDatabase, http.MethodGet, "databases/", nil, []string{"page", "amount"}, false},
	{OpCurrentDatabase, GroupDatabase, http.MethodGet, "databases/current/", nil, nil, false},
	{OpDeleteCurrentDatabase, GroupDatabase, http.MethodDelete, "databases/current/", nil, nil, false},
	{OpCurrentDatabaseStatus, GroupDatabase, http.MethodGet, "databases/current/status/", nil, nil, false},

	{OpListAllUserProperties, GroupUsersDataAndProperties, http.MethodGet, "users-properties/", nil, nil, false},
	{OpCreateUserProperty, GroupUsersDataAndProperties, http.MethodPost, "users-properties/", []string{"property_name", "value_type"}, []string{"repeated"}, false},
	{OpGetUserProperty, GroupUsersDataAndProperties, http.MethodGet, "users-properties/{property_name}/", []string{"property_name"}, nil, false},
	{OpDeleteUserProperty, GroupUsersDataAndProperties, http.MethodDelete, "users-properties/{property_name}/", []string{"property_name"}, nil, false},
	{OpGetUser, GroupUsersDataAndProperties, http.MethodGet, "users/{user_id}/", []string{"user_id"}, nil, false},
	{OpCreateOrUpdateUser, GroupUsersDataAndProperties, http.MethodPut, "users/{user_id}/", []string{"user_id", "user"}, nil, false},
	{OpPartialUpdateUser, GroupUsersDataAndProperties, http.MethodPatch, "users/{user_id}/", []string{"user_id", "user"}, []string{"create_if_missing"}, false},
	{OpCreateOrUpdateUserBulk, GroupUsersDataAndProperties, http.MethodPut, "users-bulk/", []string{"users"}, nil, false},
	{OpPartialUpdateUserBulk, GroupUsersDataAndProperties, http.MethodPatch, "users-bulk/", []string{"users"}, []string{"create_if_missing"}, false},
	{OpListAllUsers, GroupUsersDataAndProperties, http.MethodGet, "users-bulk/", nil, []string{"amount", "cursor"}, false},
	{OpListAllUsersByID, GroupUsersDataAndProperties, http.MethodPost, "users-bulk/list/", []string{"user_ids"}, nil, false},

	{OpListAllItemProperties, GroupItemsDataAndProperties, http.MethodGet, "items-properties/", nil, nil, false},
	{OpCreateItemProperty, GroupItemsDataAndProperties, http.MethodPost, "items-properties/", []string{"property_name", "value_type"}, []string{"repeated"}, false},
	{OpGetItemProperty, GroupItemsDataAndProperties, http.MethodGet, "items-properties/{property_name}/", []string{"property_name"}, nil, false},
	{OpDeleteItemProperty, GroupItemsDataAndProperties, http.MethodDelete, "items-properties/{property_name}/", []string{"property_name"}, nil, false},
	{OpGetItem, GroupItemsDataAndProperties, http.MethodGet, "items/{item_id}/", []string{"item_id"}, nil, false},
	{OpCreateOrUpdateItem, GroupItemsDataAndProperties, http.MethodPut, "items/{item_id}/", []string{"item_id", "item"}, nil, false},
	{OpPartialUpdateItem, GroupItemsDataAndProperties, http.MethodPatch, "items/{item_id}/", []string{"item_id", "item"}, []string{"create_if_missing"}, false},
	{OpCreateOrUpdateItemBulk, GroupItemsDataAndProperties, http.MethodPut, "items-bulk/", []string{"items"}, nil, false},
	{OpPartialUpdateItemBulk, GroupItemsDataAndProperties, http.MethodPatch, "items-bulk/", []string{"items"}, []string{"create_if_missing"}, false},
	{OpListAllItems, GroupItemsDataAndProperties, http.MethodGet, "items-bulk/", nil, []string{"amount", "cursor"}, false},
	{OpListAllItemsByID, GroupItemsDataAndProperties, http.MethodPost, "items-bulk/list/", []string{"item_ids"}, nil, false},

	{OpCreateOrUpdateRating, GroupUserRatings, http.MethodPut, "users/{user_id}/ratings/{item_id}/", []string{"user_id", "item_id", "rating"}, []string{"timestamp"}, false},
	{OpDeleteRating, GroupUserRatings, http.MethodDelete, "users/{user_id}/ratings/{item_id}/", []string{"user_id", "item_id"}, nil, false},
	{OpListAllRatingsForUser, GroupUserRatings, http.MethodGet, "users/{user_id}/ratings/", []string{"user_id"}, []string{"page", "amount"}, false},
	{OpCreateOrUpdateRatingsForUserBulk, GroupUserRatings, http.MethodPut, "users/{user_id}/ratings/", []string{"user_id", "ratings"}, nil, false},
	{OpDeleteAllRatingsForUser, GroupUserRatings, http.MethodDelete, "users/{user_id}/ratings/", []string{"user_id"}, nil, false},
	{OpCreateOrUpdateRatingsBulk, GroupUserRatings, http.MethodPut, "ratings-bulk/", []string{"ratings"}, nil, false},
	{OpListAllRatings, GroupUserRatings, http.MethodGet, "ratings-bulk/", nil, []string{"amount", "cursor"}, false},

	{OpCreateUserInteraction, GroupUserInteractions, http.MethodPost, "users/{user_id}/interactions/{item_id}/", []string{"user_id", "item_id", "interaction_type"}, []string{"timestamp"}, false},
	{OpCreateUserInteractionsBulk, GroupUserInteractions, http.MethodPost, "interactions-bulk/", []string{"interactions"}, nil, false},

	{OpListSimilarItemRecommendations, GroupRecommendation, http.MethodGet, "recommendation/items/{item_id}/items/", []string{"item_id"}, []string{"amount", "cursor", "filters"}, false},
	{OpListSessionBasedItemRecommendations, GroupRecommendation, http.MethodPost, "recommendation/sessions/items/", nil, []string{"amount", "cursor", "filters", "ratings", "user_properties", "exclude_rated_items"}, false},
	{OpListProfileBasedItemRecommendations, GroupRecommendation, http.MethodGet, "recommendation/users/{user_id}/items/", []string{"user_id"}, []string{"amount", "cursor", "filters", "exclude_rated_items"}, false},

	{OpTriggerBackgroundTask, GroupBackgroundTasks, http.MethodPost, "tasks/{task_name}/", []string{"task_name"}, nil, false},
	{OpListRecentBackgroundTasks, GroupBackgroundTasks, http.MethodGet, "tasks/{task_name}/recents/", []string{"task_name"}, nil, false},
}

var catalogIndex = func() map[Operation]OperationSpec {
	index := make(map[Operation]OperationSpec, len(catalog))
	for _, spec := range catalog {
		index[spec.Name] = spec
	}

	return index
}()

// Catalog returns every logical operation in declaration order.
func Catalog() []OperationSpec {
	specs := make([]OperationSpec, len(catalog))
	copy(specs, catalog)

	return specs
}

// Lookup returns the spec of a named operation.
func Lookup(name Operation) (OperationSpec, bool) {
	spec, ok := catalogIndex[name]

	return spec, ok
}

// Operations returns all operation names, sorted.
func Operations() []Operation {
	names := make([]Operation, 0, len(catalog))
	for _, spec := range catalog {
		names = append(names, spec.Name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// GroupOf returns the resource group an operation belongs to.
func GroupOf(name Operation) (Group, bool) {
	spec, ok := catalogIndex[name]

	return spec.Group, ok
}

// ExpandPath fills {name} segments of the template, path-escaping each value.
func (s OperationSpec) ExpandPath(params map[string]string) string {
	path := s.Path
	for name, value := range params {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}

	return path
}

// PathParams lists the {name} segments of the template in order.
func (s OperationSpec) PathParams() []string {
	var names []string

	rest := s.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}

		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}

		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}
