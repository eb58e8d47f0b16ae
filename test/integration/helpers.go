//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/xminds-client/pkg/xmclient"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestConfig holds the live account used by integration tests.
type TestConfig struct {
	Endpoint        string        `envconfig:"XMINDS_API_ENDPOINT" default:"https://api.crossingminds.com/"`
	Email           string        `envconfig:"XMINDS_API_EMAIL"`
	Password        string        `envconfig:"XMINDS_API_PWD"`
	DatabaseID      string        `envconfig:"XMINDS_API_DATABASE_ID"`
	ServiceName     string        `envconfig:"XMINDS_API_SERVICE_NAME"`
	ServicePassword string        `envconfig:"XMINDS_IT_SERVICE_PWD"`
	AllowWrites     bool          `envconfig:"XMINDS_IT_ALLOW_WRITES" default:"false"`
	Timeout         time.Duration `envconfig:"XMINDS_IT_TIMEOUT" default:"60s"`
	Verbose         bool          `envconfig:"XMINDS_IT_VERBOSE" default:"false"`
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig(t *testing.T) *TestConfig {
	t.Helper()

	var config TestConfig

	require.NoError(t, envconfig.Process("", &config))

	return &config
}

// SkipIfMissingRoot skips the test when no root account is configured.
func (c *TestConfig) SkipIfMissingRoot(t *testing.T) {
	t.Helper()

	if c.Email == "" || c.Password == "" {
		t.Skip("XMINDS_API_EMAIL or XMINDS_API_PWD not set, skipping integration test")
	}
}

// SkipIfMissingDatabase skips the test when no database is configured.
func (c *TestConfig) SkipIfMissingDatabase(t *testing.T) {
	t.Helper()

	c.SkipIfMissingRoot(t)

	if c.DatabaseID == "" {
		t.Skip("XMINDS_API_DATABASE_ID not set, skipping integration test")
	}
}

// SkipIfMissingService skips the test when no service account is configured.
func (c *TestConfig) SkipIfMissingService(t *testing.T) {
	t.Helper()

	if c.ServiceName == "" || c.ServicePassword == "" || c.DatabaseID == "" {
		t.Skip("service account not configured, skipping integration test")
	}
}

// Context returns a context bounded by the configured timeout.
func (c *TestConfig) Context(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	t.Cleanup(cancel)

	return ctx
}

// NewClient logs in with the given role using the configured account.
func (c *TestConfig) NewClient(t *testing.T, role xminds.Role) xminds.Client {
	t.Helper()

	cfg := &xminds.Config{
		Endpoint:   c.Endpoint,
		Role:       role,
		Email:      c.Email,
		Password:   c.Password,
		DatabaseID: c.DatabaseID,
	}

	if role == xminds.RoleService {
		cfg.ServiceName = c.ServiceName
		cfg.Password = c.ServicePassword
	}

	if c.Verbose {
		cfg.Logger = xminds.NewZerologLogger(zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel))
		cfg.Debug = true
	}

	client, err := xmclient.New(c.Context(t), cfg)
	require.NoError(t, err, "login as %s", role)

	return client
}

// GenerateTestName creates a unique name for test resources.
func GenerateTestName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}
