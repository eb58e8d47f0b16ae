package client

import (
	"context"
	"sync"

	"github.com/fivetwenty-io/xminds-client/internal/auth"
	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// Client implements the xminds.Client interface. Resource group clients are
// built lazily and bound to the access token current at build time; a
// refresh drops them so the next call rebuilds them with the new token.
type Client struct {
	httpClient *http.Client
	session    *auth.Session
	logger     xminds.Logger

	mutex       sync.Mutex
	groups      map[xminds.Group]any
	groupsToken string
}

var _ xminds.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *xminds.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New validates config, logs in with the configured role and returns a
// ready client. Configuration errors are reported before any network call.
func New(ctx context.Context, config *xminds.Config) (*Client, error) {
	if config == nil {
		return nil, &xminds.ConfigError{Err: xminds.ErrConfigRequired}
	}

	if config.Endpoint == "" {
		return nil, &xminds.ConfigError{Err: xminds.ErrEndpointRequired}
	}

	params := config.SessionParams()
	if params.Role == "" {
		params.Role = xminds.RoleRoot
	}

	var logger xminds.Logger = xminds.NopLogger{}
	if config.Logger != nil {
		logger = config.Logger
	}

	httpClient := http.NewClient(config.Endpoint, createHTTPClientOptions(config)...)

	session, err := auth.NewSession(
		params,
		NewAuthenticationClient(httpClient),
		auth.WithLogger(logger),
		auth.WithListener(config.OnCredential),
	)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient: httpClient,
		session:    session,
		logger:     logger,
		groups:     make(map[xminds.Group]any),
	}

	_, err = session.Login(ctx)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// Credential implements xminds.Client.Credential.
func (c *Client) Credential() xminds.Credential {
	credential, _ := c.session.Credential()

	return credential
}

// Role implements xminds.Client.Role.
func (c *Client) Role() xminds.Role {
	return c.session.Role()
}

// resourceGroup returns the cached group client, building it for the current
// token when missing. The token the group is bound to is returned with it.
func resourceGroup[T any](c *Client, group xminds.Group, build func(*http.Client) T) (T, string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	credential, _ := c.session.Credential()
	if credential.AccessToken != c.groupsToken {
		c.groups = make(map[xminds.Group]any)
		c.groupsToken = credential.AccessToken
	}

	if cached, ok := c.groups[group].(T); ok {
		return cached, c.groupsToken
	}

	built := build(c.httpClient.WithToken(c.groupsToken))
	c.groups[group] = built

	return built, c.groupsToken
}

// invalidate drops every cached group client.
func (c *Client) invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.groups = make(map[xminds.Group]any)
	c.groupsToken = ""
}

// call runs op on its resource group. A JwtTokenExpired failure triggers one
// credential refresh and one replay; any other outcome is returned as is.
func call[T any](
	ctx context.Context,
	c *Client,
	op xminds.Operation,
	build func(*http.Client) T,
	fn func(T) (*xminds.Value, error),
) (*xminds.Value, error) {
	group, _ := xminds.GroupOf(op)

	for attempt := 0; ; attempt++ {
		groupClient, token := resourceGroup(c, group, build)

		result, err := fn(groupClient)
		if err == nil || !xminds.IsTokenExpired(err) || attempt >= constants.MaxExpiryRetries {
			return result, err
		}

		c.logger.Info("Access token expired, refreshing", map[string]interface{}{
			"operation": string(op),
			"role":      string(c.session.Role()),
		})

		_, err = c.session.Refresh(ctx, token)
		if err != nil {
			c.logger.Warn("Credential refresh failed", map[string]interface{}{
				"operation": string(op),
				"error":     err.Error(),
			})

			return nil, err
		}

		c.invalidate()
	}
}
