package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/xminds-client/internal/config"
	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envNames = []string{
	"XMINDS_API_ENDPOINT",
	"XMINDS_API_ROLE",
	"XMINDS_API_EMAIL",
	"XMINDS_API_PWD",
	"XMINDS_API_SERVICE_NAME",
	"XMINDS_API_DATABASE_ID",
	"XMINDS_API_FRONTEND_USER_ID",
	"XMINDS_API_FRONTEND_SESSION_ID",
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range envNames {
		t.Setenv(name, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultEndpoint, cfg.Endpoint)
		assert.Empty(t, cfg.Role)
		assert.Empty(t, cfg.Email)
		assert.Empty(t, cfg.Password)
	})

	t.Run("all variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("XMINDS_API_ENDPOINT", "https://staging-api.crossingminds.com/")
		t.Setenv("XMINDS_API_ROLE", "Service")
		t.Setenv("XMINDS_API_EMAIL", "ops@example.com")
		t.Setenv("XMINDS_API_PWD", "hunter2")
		t.Setenv("XMINDS_API_SERVICE_NAME", "recommender")
		t.Setenv("XMINDS_API_DATABASE_ID", "db-42")
		t.Setenv("XMINDS_API_FRONTEND_USER_ID", "fe-user")
		t.Setenv("XMINDS_API_FRONTEND_SESSION_ID", "fe-session")

		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, &xminds.Config{
			Endpoint:          "https://staging-api.crossingminds.com/",
			Role:              xminds.RoleService,
			Email:             "ops@example.com",
			Password:          "hunter2",
			ServiceName:       "recommender",
			DatabaseID:        "db-42",
			FrontendUserID:    "fe-user",
			FrontendSessionID: "fe-session",
		}, cfg)
	})

	t.Run("invalid role", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("XMINDS_API_ROLE", "superuser")

		_, err := config.FromEnv()

		var configErr *xminds.ConfigError
		require.ErrorAs(t, err, &configErr)
		require.ErrorIs(t, err, xminds.ErrInvalidRole)
	})
}

func TestLoad(t *testing.T) {
	t.Run("file values with environment overrides", func(t *testing.T) {
		clearEnv(t)

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(
			"endpoint: https://file.example.com/\nrole: individual\nemail: file@example.com\ndatabase_id: db-file\n",
		), 0o600))

		t.Setenv("XMINDS_API_EMAIL", "env@example.com")

		v, err := config.Load(path)
		require.NoError(t, err)

		cfg, err := config.FromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "https://file.example.com/", cfg.Endpoint)
		assert.Equal(t, xminds.RoleIndividual, cfg.Role)
		assert.Equal(t, "env@example.com", cfg.Email)
		assert.Equal(t, "db-file", cfg.DatabaseID)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		clearEnv(t)

		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.ErrorIs(t, err, constants.ErrConfigNotFound)
	})

	t.Run("missing default file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HOME", t.TempDir())

		v, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultEndpoint, v.GetString(config.KeyEndpoint))
	})
}

func TestSave(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	err := config.Save(path, &xminds.Config{
		Endpoint:    "https://api.example.com/",
		Role:        xminds.RoleService,
		ServiceName: "recommender",
		DatabaseID:  "db-1",
		Password:    "never-written",
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "never-written")

	v, err := config.Load(path)
	require.NoError(t, err)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, xminds.RoleService, cfg.Role)
	assert.Equal(t, "recommender", cfg.ServiceName)
	assert.Equal(t, "db-1", cfg.DatabaseID)
	assert.Empty(t, cfg.Password)
}
