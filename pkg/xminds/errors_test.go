package xminds

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIError_FullBody(t *testing.T) {
	t.Parallel()

	body := []byte(`{"error_code":23,"error_name":"NotFoundError","message":"item not found","error_data":{"key":"123","type":"item"}}`)
	apiErr := NewAPIError(http.StatusNotFound, body)

	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.NotNil(t, apiErr.ErrorCode)
	assert.Equal(t, 23, *apiErr.ErrorCode)
	require.NotNil(t, apiErr.ErrorName)
	assert.Equal(t, "NotFoundError", *apiErr.ErrorName)
	require.NotNil(t, apiErr.ErrorMessage)
	assert.Equal(t, "item not found", *apiErr.ErrorMessage)

	key, err := apiErr.ErrorData.Field("key")
	require.NoError(t, err)

	s, err := key.Str()
	require.NoError(t, err)
	assert.Equal(t, "123", s)

	assert.Equal(t, "xminds API error (status 404): NotFoundError: item not found", apiErr.Error())
	assert.Equal(t, body, apiErr.Body())
}

func TestNewAPIError_MissingFields(t *testing.T) {
	t.Parallel()

	apiErr := NewAPIError(http.StatusBadRequest, []byte(`{"message":"bad"}`))

	assert.Nil(t, apiErr.ErrorCode)
	assert.Nil(t, apiErr.ErrorName)
	assert.Nil(t, apiErr.ErrorData)
	require.NotNil(t, apiErr.ErrorMessage)
	assert.Equal(t, "bad", *apiErr.ErrorMessage)
	assert.Empty(t, apiErr.Name())
}

func TestNewAPIError_NonJSONBody(t *testing.T) {
	t.Parallel()

	apiErr := NewAPIError(http.StatusBadGateway, []byte("upstream unavailable"))

	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Nil(t, apiErr.ErrorCode)
	assert.Nil(t, apiErr.ErrorName)
	assert.Nil(t, apiErr.ErrorMessage)
	assert.Nil(t, apiErr.ErrorData)
	assert.Equal(t, "xminds API error (status 502): upstream unavailable", apiErr.Error())
}

func TestNewAPIError_EmptyBody(t *testing.T) {
	t.Parallel()

	apiErr := NewAPIError(http.StatusInternalServerError, nil)

	assert.Equal(t, "xminds API error (status 500): Internal Server Error", apiErr.Error())
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	expired := NewAPIError(http.StatusUnauthorized, []byte(`{"error_name":"JwtTokenExpired"}`))
	notFound := NewAPIError(http.StatusNotFound, []byte(`{"error_name":"NotFoundError"}`))
	bare404 := NewAPIError(http.StatusNotFound, nil)
	other := errors.New("boom")

	tests := []struct {
		name         string
		err          error
		tokenExpired bool
		notFound     bool
		errorName    string
	}{
		{"expired token", expired, true, false, ErrorNameJwtTokenExpired},
		{"wrapped expired token", fmt.Errorf("getting item: %w", expired), true, false, ErrorNameJwtTokenExpired},
		{"not found", notFound, false, true, ErrorNameNotFound},
		{"bare 404", bare404, false, true, ""},
		{"refresh error wrapping expiry", &RefreshError{Err: expired}, true, false, ErrorNameJwtTokenExpired},
		{"plain error", other, false, false, ""},
		{"nil", nil, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.tokenExpired, IsTokenExpired(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.errorName, ErrorNameOf(tt.err))
		})
	}
}

func TestTypedErrorsUnwrap(t *testing.T) {
	t.Parallel()

	configErr := &ConfigError{Err: fmt.Errorf("%w 'admin'", ErrInvalidRole)}
	require.ErrorIs(t, configErr, ErrInvalidRole)
	assert.Equal(t, "invalid configuration: invalid client role 'admin'", configErr.Error())

	refreshErr := &RefreshError{Err: ErrNoRefreshToken}
	require.ErrorIs(t, refreshErr, ErrNoRefreshToken)
	assert.Equal(t, "refreshing credential: refresh token is not set", refreshErr.Error())

	authErr := &AuthError{Role: RoleService, Err: NewAPIError(http.StatusUnauthorized, []byte(`{"error_name":"AuthError"}`))}
	assert.Equal(t, ErrorNameAuthError, ErrorNameOf(authErr))
	assert.Contains(t, authErr.Error(), "login as service failed")
}
