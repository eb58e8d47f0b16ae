package xminds

// Record is a free-form user or item document keyed by property name.
type Record map[string]any

// IndividualLoginRequest is the identity of an individual account login.
type IndividualLoginRequest struct {
	Email             string
	Password          string
	DatabaseID        string
	FrontendUserID    string
	FrontendSessionID string
}

// ServiceLoginRequest is the identity of a service account login.
type ServiceLoginRequest struct {
	ServiceName       string
	Password          string
	DatabaseID        string
	FrontendUserID    string
	FrontendSessionID string
}

// IndividualAccountRequest creates an individual account.
type IndividualAccountRequest struct {
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
}

// ServiceAccountRequest creates a service account.
type ServiceAccountRequest struct {
	ServiceName string
	Password    string
	Role        string
}

// DatabaseCreateRequest creates a database.
type DatabaseCreateRequest struct {
	Name        string
	Description string
	ItemIDType  string
	UserIDType  string
}

// PropertyCreateRequest creates a user or item property.
type PropertyCreateRequest struct {
	PropertyName string
	ValueType    string
	Repeated     bool
}

// PageOptions selects a page of a page-numbered listing. Nil fields are not sent.
type PageOptions struct {
	Page   *int
	Amount *int
}

// CursorOptions selects a page of a cursor-paginated listing. Nil fields are not sent.
type CursorOptions struct {
	Amount *int
	Cursor *string
}

// Rating is one user/item rating. UserID is only sent by bulk calls that span users.
type Rating struct {
	UserID    string  `json:"user_id,omitempty"`
	ItemID    string  `json:"item_id"`
	Rating    float64 `json:"rating"`
	Timestamp *int64  `json:"timestamp,omitempty"`
}

// Interaction is one user/item interaction for bulk creation.
type Interaction struct {
	UserID          string `json:"user_id"`
	ItemID          string `json:"item_id"`
	InteractionType string `json:"interaction_type"`
	Timestamp       *int64 `json:"timestamp,omitempty"`
}

// SimilarItemsOptions tunes item-to-item recommendations.
type SimilarItemsOptions struct {
	Amount  *int
	Cursor  *string
	Filters []string
}

// SessionRecommendationOptions tunes session-based recommendations.
type SessionRecommendationOptions struct {
	Amount            *int
	Cursor            *string
	Filters           []string
	Ratings           []Rating
	UserProperties    Record
	ExcludeRatedItems bool
}

// ProfileRecommendationOptions tunes profile-based recommendations.
type ProfileRecommendationOptions struct {
	Amount            *int
	Cursor            *string
	Filters           []string
	ExcludeRatedItems bool
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}
