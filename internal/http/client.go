package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/hashicorp/go-retryablehttp"
)

// Client executes single HTTP exchanges against the xminds API. It never
// retries on its own; the expired-token replay lives in the dispatcher.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	token      string
	logger     xminds.Logger
	debug      bool
	userAgent  string
}

// Request represents an HTTP request. Path is relative to the base URL.
// Nil and nil-pointer entries of Query and Body are dropped before sending.
type Request struct {
	Method          string
	Path            string
	Query           map[string]any
	Body            map[string]any
	Headers         map[string]string
	Unauthenticated bool
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Envelope   *xminds.Value
}

// NewClient creates a new HTTP client for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient = &http.Client{}

	client := &Client{
		baseURL:    normalizeBaseURL(baseURL),
		httpClient: retryClient,
		userAgent:  constants.UserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// WithToken returns a copy of the client that authenticates with token.
// The copy shares the underlying transport.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token

	return &clone
}

// Token returns the access token the client is bound to.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes one request. For non-2xx statuses both the response and an
// *xminds.APIError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if !req.Unauthenticated && c.token == "" {
		return nil, xminds.ErrSessionNotStarted
	}

	fullURL := c.baseURL + strings.TrimPrefix(req.Path, "/")

	query := encodeQuery(req.Query)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var rawBody interface{}

	body := compact(req.Body)
	if len(body) > 0 {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if !req.Unauthenticated {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing %s %s: %w", req.Method, req.Path, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
			"size":     len(respBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	envelope, err := xminds.ParseResponse(httpResp.StatusCode, httpResp.Header.Get("Content-Type"), respBody)
	if err != nil {
		return resp, err
	}

	resp.Envelope = envelope

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query map[string]any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body map[string]any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body map[string]any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body map[string]any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request. Some endpoints identify the target in the body.
func (c *Client) Delete(ctx context.Context, path string, body map[string]any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Body: body})
}

func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return baseURL
}

// present dereferences pointers and reports whether v carries a value.
// Empty strings, slices and maps count as absent; false and zero do not.
func present(v any) (any, bool) {
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if rv.IsNil() || rv.Len() == 0 {
			return nil, false
		}
	case reflect.String, reflect.Array:
		if rv.Len() == 0 {
			return nil, false
		}
	}

	return rv.Interface(), true
}

func compact(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))

	for key, raw := range fields {
		if value, ok := present(raw); ok {
			out[key] = value
		}
	}

	return out
}

// encodeQuery flattens parameters into url.Values; slices become repeated keys.
func encodeQuery(query map[string]any) url.Values {
	values := url.Values{}

	for key, raw := range query {
		value, ok := present(raw)
		if !ok {
			continue
		}

		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := range rv.Len() {
				if item, ok := present(rv.Index(i).Interface()); ok {
					values.Add(key, fmt.Sprint(item))
				}
			}

			continue
		}

		values.Add(key, fmt.Sprint(value))
	}

	return values
}
