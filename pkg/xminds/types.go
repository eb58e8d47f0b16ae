package xminds

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Role is the kind of account a client authenticates as.
type Role string

// Supported roles.
const (
	RoleRoot       Role = "root"
	RoleIndividual Role = "individual"
	RoleService    Role = "service"
)

// ParseRole validates a role name. Anything outside the three supported roles
// fails with ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	switch role {
	case RoleRoot, RoleIndividual, RoleService:
		return role, nil
	default:
		return "", fmt.Errorf("%w '%s'", ErrInvalidRole, s)
	}
}

// Refreshable reports whether sessions of this role receive a refresh token.
func (r Role) Refreshable() bool {
	return r == RoleIndividual || r == RoleService
}

// Credential is the live token pair of one authenticated session.
// RefreshToken is empty for root sessions.
type Credential struct {
	AccessToken  string `json:"token"                   yaml:"token"`
	RefreshToken string `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	Role         Role   `json:"role"                    yaml:"role"`
}

// HasRefreshToken reports whether the credential can be refreshed.
func (c *Credential) HasRefreshToken() bool {
	return c != nil && c.RefreshToken != ""
}

// SessionParams identifies the account a session logs in as. Which fields are
// used depends on Role; FrontendUserID and FrontendSessionID are optional and
// omitted from the login payload when empty.
type SessionParams struct {
	Role              Role
	Email             string
	Password          string
	ServiceName       string
	DatabaseID        string
	FrontendUserID    string
	FrontendSessionID string
}

// CredentialListener is notified after every successful login or refresh.
type CredentialListener func(credential Credential)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an xminds client.
//
// # Roles
//
// Role selects the login flow:
//  1. root: Email and Password. Root sessions cannot be refreshed; an expired
//     root token surfaces as a RefreshError.
//  2. individual: Email, Password and DatabaseID.
//  3. service: ServiceName, Password and DatabaseID.
//
// Individual and service sessions may also carry FrontendUserID and
// FrontendSessionID.
//
// # Defaults
//
// xmclient.New fills every empty field from the XMINDS_API_* environment
// variables before the client is built. Fields set here always win.
//
// # Timeouts and retries
//
// Requests are bounded by the context passed to each call and by HTTPTimeout
// when set. The client never retries on its own except once after a
// JwtTokenExpired error, following a successful credential refresh.
type Config struct {
	// Endpoint: base URL of the API, e.g. "https://api.crossingminds.com/".
	Endpoint string
	// Role: root, individual or service. Empty defaults to root.
	Role Role

	Email             string
	Password          string
	ServiceName       string
	DatabaseID        string
	FrontendUserID    string
	FrontendSessionID string

	// HTTPTimeout: optional per-request timeout. Zero leaves it to the context.
	HTTPTimeout time.Duration
	// HTTPClient: optional underlying HTTP client.
	HTTPClient *http.Client
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
	// OnCredential: optional hook called after each login and refresh.
	OnCredential CredentialListener
}

// SessionParams extracts the login identity from the config.
func (c *Config) SessionParams() SessionParams {
	return SessionParams{
		Role:              c.Role,
		Email:             c.Email,
		Password:          c.Password,
		ServiceName:       c.ServiceName,
		DatabaseID:        c.DatabaseID,
		FrontendUserID:    c.FrontendUserID,
		FrontendSessionID: c.FrontendSessionID,
	}
}

// MergeDefaults fills every empty identity field from defaults.
func (c *Config) MergeDefaults(defaults *Config) {
	if defaults == nil {
		return
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Endpoint, defaults.Endpoint)
	fill(&c.Email, defaults.Email)
	fill(&c.Password, defaults.Password)
	fill(&c.ServiceName, defaults.ServiceName)
	fill(&c.DatabaseID, defaults.DatabaseID)
	fill(&c.FrontendUserID, defaults.FrontendUserID)
	fill(&c.FrontendSessionID, defaults.FrontendSessionID)

	if c.Role == "" {
		c.Role = defaults.Role
	}
}
