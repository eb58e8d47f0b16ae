package xminds

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error names sent by the API in the error_name field.
const (
	// ErrorNameJwtTokenExpired marks an expired access token. The value is part
	// of the remote API contract and must match exactly.
	ErrorNameJwtTokenExpired = "JwtTokenExpired"
	ErrorNameNotFound        = "NotFoundError"
	ErrorNameAuthError       = "AuthError"
)

// Static errors for err113 compliance.
var (
	ErrInvalidRole       = errors.New("invalid client role")
	ErrEndpointRequired  = errors.New("API endpoint is required")
	ErrConfigRequired    = errors.New("config is required")
	ErrNoRefreshToken    = errors.New("refresh token is not set")
	ErrMissingToken      = errors.New("login response did not contain a token")
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrMissingArgument   = errors.New("missing required argument")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrFieldNotFound     = errors.New("field not found")
	ErrNotObject         = errors.New("value is not an object")
	ErrNotArray          = errors.New("value is not an array")
	ErrWrongKind         = errors.New("value has the wrong kind")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrUnexpectedToken   = errors.New("unexpected JSON token")
	ErrTrailingData      = errors.New("trailing data after JSON document")
	ErrSessionNotStarted = errors.New("session has no credential")
)

// APIError is the structured error returned for any non-2xx response.
// Optional fields are nil when the server omitted them.
type APIError struct {
	StatusCode   int
	ErrorCode    *int
	ErrorName    *string
	ErrorMessage *string
	ErrorData    *Value

	body []byte
}

// NewAPIError builds an APIError from a status code and the raw error body.
// A body that is not a JSON object leaves every optional field nil.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, body: body}

	message, err := ParseJSON(body)
	if err != nil || message.Kind() != KindObject {
		return apiErr
	}

	if code, err := message.Field("error_code"); err == nil {
		if n, err := code.Int64(); err == nil {
			value := int(n)
			apiErr.ErrorCode = &value
		}
	}

	apiErr.ErrorName = optionalString(message, "error_name")
	apiErr.ErrorMessage = optionalString(message, "message")

	if data, err := message.Field("error_data"); err == nil && !data.IsNull() {
		apiErr.ErrorData = data
	}

	return apiErr
}

func optionalString(message *Value, name string) *string {
	field, err := message.Field(name)
	if err != nil {
		return nil
	}

	s, err := field.Str()
	if err != nil {
		return nil
	}

	return &s
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "xminds API error (status %d)", e.StatusCode)

	if e.ErrorName != nil {
		fmt.Fprintf(&b, ": %s", *e.ErrorName)
	}

	if e.ErrorMessage != nil {
		fmt.Fprintf(&b, ": %s", *e.ErrorMessage)
	}

	if e.ErrorName == nil && e.ErrorMessage == nil {
		body := strings.TrimSpace(string(e.body))
		if body == "" {
			body = http.StatusText(e.StatusCode)
		}

		fmt.Fprintf(&b, ": %s", body)
	}

	return b.String()
}

// Name returns error_name or "" when absent.
func (e *APIError) Name() string {
	if e.ErrorName == nil {
		return ""
	}

	return *e.ErrorName
}

// Body returns the raw error body as received.
func (e *APIError) Body() []byte {
	return e.body
}

// TokenExpired reports whether the error classifies as credential expiry.
func (e *APIError) TokenExpired() bool {
	return e.Name() == ErrorNameJwtTokenExpired
}

// ConfigError is raised before any network call when client configuration is invalid.
type ConfigError struct {
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// AuthError reports a rejected login.
type AuthError struct {
	Role Role
	Err  error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("login as %s failed: %v", e.Role, e.Err)
}

// Unwrap returns the underlying cause, usually an *APIError.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// RefreshError reports a failed credential refresh, including the local case
// where no refresh token is available.
type RefreshError struct {
	Err error
}

// Error implements the error interface.
func (e *RefreshError) Error() string {
	return "refreshing credential: " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *RefreshError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsTokenExpired checks if the error is a credential-expiry API error.
func IsTokenExpired(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.TokenExpired()
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}

	return apiErr.Name() == ErrorNameNotFound || apiErr.StatusCode == http.StatusNotFound
}

// ErrorNameOf returns the error_name of an API error in the chain, or "".
func ErrorNameOf(err error) string {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return ""
	}

	return apiErr.Name()
}
