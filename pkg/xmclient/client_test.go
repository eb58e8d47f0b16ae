package xmclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fivetwenty-io/xminds-client/pkg/xmclient"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loginServer accepts every login and records the last login path and body.
type loginServer struct {
	*httptest.Server

	mu   sync.Mutex
	path string
	body map[string]interface{}
}

func newLoginServer(t *testing.T) *loginServer {
	t.Helper()

	server := &loginServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)

		server.mu.Lock()
		server.path = request.URL.Path
		server.body = body
		server.mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]string{
			"token":         "access",
			"refresh_token": "refresh",
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func (s *loginServer) last() (string, map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.path, s.body
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		"XMINDS_API_ENDPOINT", "XMINDS_API_ROLE", "XMINDS_API_EMAIL", "XMINDS_API_PWD",
		"XMINDS_API_SERVICE_NAME", "XMINDS_API_DATABASE_ID",
		"XMINDS_API_FRONTEND_USER_ID", "XMINDS_API_FRONTEND_SESSION_ID",
	} {
		t.Setenv(name, "")
	}
}

func TestNew_RequiresConfig(t *testing.T) {
	clearEnv(t)

	_, err := xmclient.New(context.Background(), nil)

	var configErr *xminds.ConfigError
	require.ErrorAs(t, err, &configErr)
	require.ErrorIs(t, err, xminds.ErrConfigRequired)
}

func TestNew_EnvironmentDefaults(t *testing.T) {
	clearEnv(t)

	server := newLoginServer(t)
	t.Setenv("XMINDS_API_ENDPOINT", server.URL)
	t.Setenv("XMINDS_API_ROLE", "individual")
	t.Setenv("XMINDS_API_EMAIL", "env@example.com")
	t.Setenv("XMINDS_API_PWD", "env-secret")
	t.Setenv("XMINDS_API_DATABASE_ID", "db-env")

	cfg := &xminds.Config{}

	cli, err := xmclient.New(context.Background(), cfg)
	require.NoError(t, err)

	path, body := server.last()
	assert.Equal(t, "/login/individual/", path)
	assert.Equal(t, map[string]interface{}{
		"email":    "env@example.com",
		"password": "env-secret",
		"db_id":    "db-env",
	}, body)

	assert.Equal(t, xminds.RoleIndividual, cli.Role())
	assert.Equal(t, "refresh", cli.Credential().RefreshToken)
	assert.Equal(t, &xminds.Config{}, cfg, "caller config must not be modified")
}

func TestNew_ExplicitFieldsWin(t *testing.T) {
	clearEnv(t)

	server := newLoginServer(t)
	t.Setenv("XMINDS_API_ENDPOINT", "http://127.0.0.1:1")
	t.Setenv("XMINDS_API_ROLE", "service")
	t.Setenv("XMINDS_API_EMAIL", "env@example.com")
	t.Setenv("XMINDS_API_PWD", "env-secret")

	cli, err := xmclient.New(context.Background(), &xminds.Config{
		Endpoint: server.URL,
		Role:     xminds.RoleRoot,
		Email:    "root@example.com",
	})
	require.NoError(t, err)

	path, body := server.last()
	assert.Equal(t, "/login/root/", path)
	assert.Equal(t, "root@example.com", body["email"])
	assert.Equal(t, "env-secret", body["password"])
	assert.Equal(t, xminds.RoleRoot, cli.Role())

	credential := cli.Credential()
	assert.False(t, credential.HasRefreshToken())
}

func TestNew_DefaultsToRoot(t *testing.T) {
	clearEnv(t)

	server := newLoginServer(t)

	cli, err := xmclient.New(context.Background(), &xminds.Config{Endpoint: server.URL})
	require.NoError(t, err)

	path, _ := server.last()
	assert.Equal(t, "/login/root/", path)
	assert.Equal(t, xminds.RoleRoot, cli.Role())
}

func TestNew_InvalidEnvironmentRole(t *testing.T) {
	clearEnv(t)
	t.Setenv("XMINDS_API_ROLE", "guest")

	_, err := xmclient.New(context.Background(), &xminds.Config{Endpoint: "https://api.example.com/"})
	require.ErrorIs(t, err, xminds.ErrInvalidRole)
}

func TestNew_ErrorsAreNotWrapped(t *testing.T) {
	clearEnv(t)

	t.Run("login rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(writer).Encode(map[string]string{"error_name": "AuthError"})
		}))
		defer server.Close()

		_, err := xmclient.New(context.Background(), &xminds.Config{
			Endpoint: server.URL,
			Email:    "root@example.com",
			Password: "wrong",
		})
		require.Error(t, err)

		authErr, ok := err.(*xminds.AuthError) //nolint:errorlint // construction returns the login error as is
		require.True(t, ok, "unexpected error type %T", err)
		assert.Equal(t, xminds.RoleRoot, authErr.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := xmclient.New(context.Background(), &xminds.Config{
			Endpoint: "https://api.example.com/",
			Role:     "admin",
		})

		_, ok := err.(*xminds.ConfigError) //nolint:errorlint // construction returns the configuration error as is
		require.True(t, ok, "unexpected error type %T", err)
	})
}

func TestHelpers(t *testing.T) {
	clearEnv(t)

	server := newLoginServer(t)
	ctx := context.Background()

	t.Run("NewRoot", func(t *testing.T) {
		cli, err := xmclient.NewRoot(ctx, server.URL, "root@example.com", "pw")
		require.NoError(t, err)

		path, body := server.last()
		assert.Equal(t, "/login/root/", path)
		assert.Equal(t, map[string]interface{}{"email": "root@example.com", "password": "pw"}, body)
		assert.Equal(t, xminds.RoleRoot, cli.Role())
	})

	t.Run("NewIndividual", func(t *testing.T) {
		cli, err := xmclient.NewIndividual(ctx, server.URL, "me@example.com", "pw", "db-1")
		require.NoError(t, err)

		path, body := server.last()
		assert.Equal(t, "/login/individual/", path)
		assert.Equal(t, "db-1", body["db_id"])
		assert.Equal(t, xminds.RoleIndividual, cli.Role())
	})

	t.Run("NewService", func(t *testing.T) {
		cli, err := xmclient.NewService(ctx, server.URL, "recommender", "pw", "db-1")
		require.NoError(t, err)

		path, body := server.last()
		assert.Equal(t, "/login/service/", path)
		assert.Equal(t, "recommender", body["name"])
		assert.Equal(t, xminds.RoleService, cli.Role())
	})
}
