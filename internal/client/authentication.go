package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// AuthenticationClient implements xminds.AuthenticationOperations.
type AuthenticationClient struct {
	httpClient *http.Client
}

// NewAuthenticationClient creates a new authentication client.
func NewAuthenticationClient(httpClient *http.Client) *AuthenticationClient {
	return &AuthenticationClient{
		httpClient: httpClient,
	}
}

// ListAllAccounts lists the accounts of the current organization.
func (c *AuthenticationClient) ListAllAccounts(ctx context.Context) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpListAllAccounts, nil, nil, nil)
}

// CreateIndividualAccount creates an individual account.
func (c *AuthenticationClient) CreateIndividualAccount(ctx context.Context, request *xminds.IndividualAccountRequest) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpCreateIndividualAccount, nil, nil, map[string]any{
		"email":      request.Email,
		"password":   request.Password,
		"role":       request.Role,
		"first_name": request.FirstName,
		"last_name":  request.LastName,
	})
}

// DeleteIndividualAccount deletes the individual account with email.
func (c *AuthenticationClient) DeleteIndividualAccount(ctx context.Context, email string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpDeleteIndividualAccount, nil, nil, map[string]any{
		"email": email,
	})
}

// CreateServiceAccount creates a service account.
func (c *AuthenticationClient) CreateServiceAccount(ctx context.Context, request *xminds.ServiceAccountRequest) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpCreateServiceAccount, nil, nil, map[string]any{
		"name":     request.ServiceName,
		"password": request.Password,
		"role":     request.Role,
	})
}

// DeleteServiceAccount deletes the service account named serviceName.
func (c *AuthenticationClient) DeleteServiceAccount(ctx context.Context, serviceName string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpDeleteServiceAccount, nil, nil, map[string]any{
		"name": serviceName,
	})
}

// LoginAsIndividual logs in an individual account. Empty frontend ids are
// left out of the payload.
func (c *AuthenticationClient) LoginAsIndividual(ctx context.Context, request *xminds.IndividualLoginRequest) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpLoginAsIndividual, nil, nil, map[string]any{
		"email":               request.Email,
		"password":            request.Password,
		"db_id":               request.DatabaseID,
		"frontend_user_id":    optional(request.FrontendUserID),
		"frontend_session_id": optional(request.FrontendSessionID),
	})
}

// LoginAsService logs in a service account. Empty frontend ids are left out
// of the payload.
func (c *AuthenticationClient) LoginAsService(ctx context.Context, request *xminds.ServiceLoginRequest) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpLoginAsService, nil, nil, map[string]any{
		"name":                request.ServiceName,
		"password":            request.Password,
		"db_id":               request.DatabaseID,
		"frontend_user_id":    optional(request.FrontendUserID),
		"frontend_session_id": optional(request.FrontendSessionID),
	})
}

// LoginAsRoot logs in the root account.
func (c *AuthenticationClient) LoginAsRoot(ctx context.Context, email, password string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpLoginAsRoot, nil, nil, map[string]any{
		"email":    email,
		"password": password,
	})
}

// RenewLoginWithRefreshToken exchanges a refresh token for a new token pair.
func (c *AuthenticationClient) RenewLoginWithRefreshToken(ctx context.Context, refreshToken string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpRenewLoginWithRefreshToken, nil, nil, map[string]any{
		"refresh_token": refreshToken,
	})
}

// ResendEmailVerificationCode asks the API to send a new verification code.
func (c *AuthenticationClient) ResendEmailVerificationCode(ctx context.Context, email string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpResendEmailVerificationCode, nil, nil, map[string]any{
		"email": email,
	})
}

// VerifyEmail confirms an email address with the code it received.
func (c *AuthenticationClient) VerifyEmail(ctx context.Context, email, code string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpVerifyEmail, nil, nil, map[string]any{
		"email": email,
		"code":  code,
	})
}

// DeleteCurrentAccount deletes the logged-in account.
func (c *AuthenticationClient) DeleteCurrentAccount(ctx context.Context) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpDeleteCurrentAccount, nil, nil, nil)
}
