package xmclient

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/xminds-client/internal/client"
	"github.com/fivetwenty-io/xminds-client/internal/config"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// New creates a logged-in Crossing Minds API client. Empty fields of cfg are
// filled from the XMINDS_API_* environment; cfg itself is not modified.
func New(ctx context.Context, cfg *xminds.Config) (xminds.Client, error) {
	if cfg == nil {
		return nil, &xminds.ConfigError{Err: xminds.ErrConfigRequired}
	}

	defaults, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	merged := *cfg
	merged.MergeDefaults(defaults)
	merged.Endpoint = normalizeEndpoint(merged.Endpoint)

	if merged.Role == "" {
		merged.Role = xminds.RoleRoot
	}

	c, err := client.New(ctx, &merged)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// normalizeEndpoint adds a scheme to bare host names.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return ""
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewRoot logs in as the root account of an organization.
func NewRoot(ctx context.Context, endpoint, email, password string) (xminds.Client, error) {
	return New(ctx, &xminds.Config{
		Endpoint: endpoint,
		Role:     xminds.RoleRoot,
		Email:    email,
		Password: password,
	})
}

// NewIndividual logs in as an individual account on databaseID.
func NewIndividual(ctx context.Context, endpoint, email, password, databaseID string) (xminds.Client, error) {
	return New(ctx, &xminds.Config{
		Endpoint:   endpoint,
		Role:       xminds.RoleIndividual,
		Email:      email,
		Password:   password,
		DatabaseID: databaseID,
	})
}

// NewService logs in as a service account on databaseID.
func NewService(ctx context.Context, endpoint, serviceName, password, databaseID string) (xminds.Client, error) {
	return New(ctx, &xminds.Config{
		Endpoint:    endpoint,
		Role:        xminds.RoleService,
		ServiceName: serviceName,
		Password:    password,
		DatabaseID:  databaseID,
	})
}
