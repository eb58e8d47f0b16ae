package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/stretchr/testify/require"
)

// recordedRequest is one request seen by fakeAPI.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]interface{}
	Auth   string
}

// fakeAPI emulates the login and token rotation behaviour of the xminds API.
// Authenticated requests must carry the current access token; anything else
// is answered with JwtTokenExpired.
type fakeAPI struct {
	t      *testing.T
	server *httptest.Server

	mu           sync.Mutex
	token        string
	refreshToken string
	generation   int
	expireNext   int
	requests     []recordedRequest
	routes       map[string]http.HandlerFunc
	logins       int
	refreshes    int
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{
		t:      t,
		routes: make(map[string]http.HandlerFunc),
	}

	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.server.Close)

	return api
}

// handle registers a handler for "METHOD /path/".
func (a *fakeAPI) handle(method, path string, handler http.HandlerFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.routes[method+" "+path] = handler
}

// expire makes the next n authenticated requests fail with JwtTokenExpired.
func (a *fakeAPI) expire(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.expireNext = n
}

// revoke invalidates the current access token until the next refresh.
func (a *fakeAPI) revoke() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token = "revoked"
}

func (a *fakeAPI) snapshot() []recordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]recordedRequest, len(a.requests))
	copy(out, a.requests)

	return out
}

func (a *fakeAPI) requestsTo(method, path string) []recordedRequest {
	var out []recordedRequest

	for _, req := range a.snapshot() {
		if req.Method == method && req.Path == path {
			out = append(out, req)
		}
	}

	return out
}

func (a *fakeAPI) counts() (logins, refreshes int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.logins, a.refreshes
}

func (a *fakeAPI) serve(writer http.ResponseWriter, request *http.Request) {
	var body map[string]interface{}

	_ = json.NewDecoder(request.Body).Decode(&body)

	a.mu.Lock()
	a.requests = append(a.requests, recordedRequest{
		Method: request.Method,
		Path:   request.URL.Path,
		Query:  request.URL.Query(),
		Body:   body,
		Auth:   request.Header.Get("Authorization"),
	})

	switch request.URL.Path {
	case "/login/root/":
		a.logins++
		a.generation++
		a.token = fmt.Sprintf("root-%d", a.generation)
		a.refreshToken = ""
		reply := map[string]interface{}{"token": a.token}
		a.mu.Unlock()
		writeJSON(writer, http.StatusOK, reply)

		return
	case "/login/individual/", "/login/service/":
		a.logins++
		a.generation++
		a.token = fmt.Sprintf("access-%d", a.generation)
		a.refreshToken = fmt.Sprintf("refresh-%d", a.generation)
		reply := map[string]interface{}{"token": a.token, "refresh_token": a.refreshToken, "database": map[string]string{"id": "db"}}
		a.mu.Unlock()
		writeJSON(writer, http.StatusOK, reply)

		return
	case "/login/refresh-token/":
		if body["refresh_token"] != a.refreshToken || a.refreshToken == "" {
			a.mu.Unlock()
			writeJSON(writer, http.StatusUnauthorized, map[string]interface{}{"error_name": "AuthError", "message": "bad refresh token"})

			return
		}

		a.refreshes++
		a.generation++
		a.token = fmt.Sprintf("access-%d", a.generation)
		a.refreshToken = fmt.Sprintf("refresh-%d", a.generation)
		reply := map[string]interface{}{"token": a.token, "refresh_token": a.refreshToken}
		a.mu.Unlock()
		writeJSON(writer, http.StatusOK, reply)

		return
	}

	expired := a.expireNext > 0 || request.Header.Get("Authorization") != "Bearer "+a.token
	if a.expireNext > 0 {
		a.expireNext--
	}

	handler := a.routes[request.Method+" "+request.URL.Path]
	a.mu.Unlock()

	if expired {
		writeJSON(writer, http.StatusUnauthorized, map[string]interface{}{
			"error_code": 21,
			"error_name": xminds.ErrorNameJwtTokenExpired,
			"message":    "JWT token has expired",
		})

		return
	}

	if handler != nil {
		handler(writer, request)

		return
	}

	writeJSON(writer, http.StatusOK, map[string]interface{}{"path": request.URL.Path})
}

func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}

// newTestClient logs in against api with the given role.
func newTestClient(t *testing.T, api *fakeAPI, role xminds.Role) *Client {
	t.Helper()

	client, err := New(context.Background(), &xminds.Config{
		Endpoint:    api.server.URL,
		Role:        role,
		Email:       "user@example.com",
		Password:    "secret",
		ServiceName: "svc",
		DatabaseID:  "db-1",
	})
	require.NoError(t, err)

	return client
}

// lastRequest returns the most recent non-login request.
func (a *fakeAPI) lastRequest(t *testing.T) recordedRequest {
	t.Helper()

	requests := a.snapshot()
	for i := len(requests) - 1; i >= 0; i-- {
		if !strings.HasPrefix(requests[i].Path, "/login/") {
			return requests[i]
		}
	}

	t.Fatal("no API request recorded")

	return recordedRequest{}
}
