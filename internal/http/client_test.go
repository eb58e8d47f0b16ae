package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	xmhttp "github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/items/123/", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			writeJSON(writer, http.StatusOK, map[string]interface{}{"item": map[string]string{"id": "123"}})
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("test-token"))

		resp, err := client.Do(context.Background(), &xmhttp.Request{
			Method: "GET",
			Path:   "items/123/",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		id, err := resp.Envelope.Path("item", "id")
		require.NoError(t, err)

		s, err := id.Str()
		require.NoError(t, err)
		assert.Equal(t, "123", s)
	})

	t.Run("base URL with path prefix", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/databases/current/", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL+"/v1", xmhttp.WithToken("t"))

		resp, err := client.Get(context.Background(), "/databases/current/", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, xminds.KindObject, resp.Envelope.Kind())
		assert.Zero(t, resp.Envelope.Len())
	})

	t.Run("query parameters are compacted", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			query := request.URL.Query()
			assert.Equal(t, "2", query.Get("page"))
			assert.Equal(t, []string{"a", "b"}, query["filters"])
			assert.Equal(t, "true", query.Get("exclude_rated_items"))
			assert.NotContains(t, query, "amount")
			assert.NotContains(t, query, "cursor")
			writeJSON(writer, http.StatusOK, map[string]interface{}{})
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))

		var cursor *string

		page := 2

		_, err := client.Get(context.Background(), "ratings-bulk/", map[string]any{
			"page":                &page,
			"amount":              nil,
			"cursor":              cursor,
			"filters":             []string{"a", "b"},
			"exclude_rated_items": true,
		})
		require.NoError(t, err)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "user@example.com", body["email"])
			assert.NotContains(t, body, "frontend_user_id")

			writeJSON(writer, http.StatusCreated, map[string]string{"id": "acc-1"})
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))

		resp, err := client.Post(context.Background(), "accounts/individual/", map[string]any{
			"email":            "user@example.com",
			"frontend_user_id": nil,
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("empty optional values are dropped", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.URL.RawQuery)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, map[string]interface{}{"exclude_rated_items": false, "amt": float64(0)}, body)

			writeJSON(writer, http.StatusOK, map[string]interface{}{})
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))

		empty := ""
		zero := 0

		_, err := client.Do(context.Background(), &xmhttp.Request{
			Method: http.MethodPost,
			Path:   "recommendation/sessions/items/",
			Query: map[string]any{
				"cursor":  &empty,
				"filters": []string{},
				"tags":    []string{""},
			},
			Body: map[string]any{
				"cursor":              &empty,
				"filters":             []string{},
				"ratings":             []interface{}{},
				"user_properties":     map[string]any{},
				"name":                "",
				"amt":                 &zero,
				"exclude_rated_items": false,
			},
		})
		require.NoError(t, err)
	})

	t.Run("empty body is not sent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			data, _ := io.ReadAll(request.Body)
			assert.Empty(t, data)
			assert.Empty(t, request.Header.Get("Content-Type"))
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))

		_, err := client.Delete(context.Background(), "databases/current/", map[string]any{"unused": nil})
		require.NoError(t, err)
	})

	t.Run("unauthenticated request omits bearer", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			writeJSON(writer, http.StatusOK, map[string]string{"token": "jwt"})
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL)

		_, err := client.Do(context.Background(), &xmhttp.Request{
			Method:          "POST",
			Path:            "login/root/",
			Body:            map[string]any{"email": "a", "password": "b"},
			Unauthenticated: true,
		})
		require.NoError(t, err)
	})

	t.Run("authenticated request without token", func(t *testing.T) {
		t.Parallel()

		client := xmhttp.NewClient("http://127.0.0.1:0")

		_, err := client.Get(context.Background(), "items/1/", nil)
		require.ErrorIs(t, err, xminds.ErrSessionNotStarted)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusNotFound, map[string]interface{}{
				"error_code": 10,
				"error_name": "NotFoundError",
				"message":    "item not found",
				"error_data": map[string]string{"key": "123"},
			})
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))

		resp, err := client.Get(context.Background(), "items/123/", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Nil(t, resp.Envelope)

		apiErr := &xminds.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, "NotFoundError", apiErr.Name())

		key, err := apiErr.ErrorData.Field("key")
		require.NoError(t, err)

		s, _ := key.Str()
		assert.Equal(t, "123", s)
	})

	t.Run("plain text success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "text/plain")
			_, _ = writer.Write([]byte("pong"))
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))

		resp, err := client.Get(context.Background(), "ping/", nil)
		require.NoError(t, err)

		body, err := resp.Envelope.Field(xminds.RawBodyField)
		require.NoError(t, err)

		s, _ := body.Str()
		assert.Equal(t, "pong", s)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "xminds-test/1", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"), xmhttp.WithUserAgent("xminds-test/1"))

		resp, err := client.Do(context.Background(), &xmhttp.Request{
			Method: "GET",
			Path:   "items/",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusOK, map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"), xmhttp.WithLogger(logger), xmhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "items/", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*xmhttp.Client, context.Context) (*xmhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *xmhttp.Client, ctx context.Context) (*xmhttp.Response, error) {
				return c.Get(ctx, "test/", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *xmhttp.Client, ctx context.Context) (*xmhttp.Response, error) {
				return c.Post(ctx, "test/", map[string]any{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *xmhttp.Client, ctx context.Context) (*xmhttp.Response, error) {
				return c.Put(ctx, "test/", map[string]any{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *xmhttp.Client, ctx context.Context) (*xmhttp.Response, error) {
				return c.Patch(ctx, "test/", map[string]any{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *xmhttp.Client, ctx context.Context) (*xmhttp.Response, error) {
				return c.Delete(ctx, "test/", nil)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test/", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_NoAutomaticRetry(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusBadRequest} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var attempts int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				atomic.AddInt32(&attempts, 1)
				writer.WriteHeader(status)
			}))
			defer server.Close()

			client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))

			resp, err := client.Get(context.Background(), "test/", nil)
			require.Error(t, err)
			assert.Equal(t, status, resp.StatusCode)
			assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
		})
	}
}

func TestClient_WithToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusOK, map[string]string{"auth": request.Header.Get("Authorization")})
	}))
	defer server.Close()

	base := xmhttp.NewClient(server.URL, xmhttp.WithToken("old"))
	rotated := base.WithToken("new")

	assert.Equal(t, "old", base.Token())
	assert.Equal(t, "new", rotated.Token())
	assert.Equal(t, base.BaseURL(), rotated.BaseURL())

	resp, err := rotated.Get(context.Background(), "whoami/", nil)
	require.NoError(t, err)

	auth, err := resp.Envelope.Field("auth")
	require.NoError(t, err)

	s, _ := auth.Str()
	assert.Equal(t, "Bearer new", s)
}

func TestClient_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-request.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := xmhttp.NewClient(server.URL, xmhttp.WithToken("t"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "slow/", nil)
	require.Error(t, err)
}
