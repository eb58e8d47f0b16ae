package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// Authenticator performs the login calls a session needs.
type Authenticator interface {
	LoginAsRoot(ctx context.Context, email, password string) (*xminds.Value, error)
	LoginAsIndividual(ctx context.Context, request *xminds.IndividualLoginRequest) (*xminds.Value, error)
	LoginAsService(ctx context.Context, request *xminds.ServiceLoginRequest) (*xminds.Value, error)
	RenewLoginWithRefreshToken(ctx context.Context, refreshToken string) (*xminds.Value, error)
}

// Session owns the credential of one client: it logs in for the configured
// role and replaces the credential on refresh.
type Session struct {
	params   xminds.SessionParams
	auth     Authenticator
	store    *CredentialStore
	logger   xminds.Logger
	listener xminds.CredentialListener

	// serializes login and refresh
	mutex sync.Mutex
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger xminds.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithListener registers a hook called after every login and refresh.
func WithListener(listener xminds.CredentialListener) SessionOption {
	return func(s *Session) {
		s.listener = listener
	}
}

// NewSession validates the role and prepares a session. No network call is made.
func NewSession(params xminds.SessionParams, authenticator Authenticator, opts ...SessionOption) (*Session, error) {
	role, err := xminds.ParseRole(string(params.Role))
	if err != nil {
		return nil, &xminds.ConfigError{Err: err}
	}

	params.Role = role

	session := &Session{
		params: params,
		auth:   authenticator,
		store:  NewCredentialStore(),
		logger: xminds.NopLogger{},
	}

	for _, opt := range opts {
		opt(session)
	}

	return session, nil
}

// Role returns the session role.
func (s *Session) Role() xminds.Role {
	return s.params.Role
}

// Credential returns the current credential.
func (s *Session) Credential() (xminds.Credential, bool) {
	credential := s.store.Get()
	if credential == nil {
		return xminds.Credential{}, false
	}

	return *credential, true
}

// Login authenticates with the role-specific flow and stores the credential.
func (s *Session) Login(ctx context.Context) (xminds.Credential, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var (
		envelope *xminds.Value
		err      error
	)

	switch s.params.Role {
	case xminds.RoleIndividual:
		envelope, err = s.auth.LoginAsIndividual(ctx, &xminds.IndividualLoginRequest{
			Email:             s.params.Email,
			Password:          s.params.Password,
			DatabaseID:        s.params.DatabaseID,
			FrontendUserID:    s.params.FrontendUserID,
			FrontendSessionID: s.params.FrontendSessionID,
		})
	case xminds.RoleService:
		envelope, err = s.auth.LoginAsService(ctx, &xminds.ServiceLoginRequest{
			ServiceName:       s.params.ServiceName,
			Password:          s.params.Password,
			DatabaseID:        s.params.DatabaseID,
			FrontendUserID:    s.params.FrontendUserID,
			FrontendSessionID: s.params.FrontendSessionID,
		})
	default:
		envelope, err = s.auth.LoginAsRoot(ctx, s.params.Email, s.params.Password)
	}

	if err != nil {
		return xminds.Credential{}, &xminds.AuthError{Role: s.params.Role, Err: err}
	}

	credential, err := credentialFrom(envelope, s.params.Role)
	if err != nil {
		return xminds.Credential{}, &xminds.AuthError{Role: s.params.Role, Err: err}
	}

	s.replace(credential, "Logged in")

	return credential, nil
}

// Refresh exchanges the refresh token for a new credential. stale is the
// access token the caller saw rejected; when another caller has already
// replaced it, the current credential is returned without a network call.
func (s *Session) Refresh(ctx context.Context, stale string) (xminds.Credential, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current := s.store.Get()
	if current != nil && current.AccessToken != stale {
		return *current, nil
	}

	if !current.HasRefreshToken() {
		return xminds.Credential{}, &xminds.RefreshError{Err: xminds.ErrNoRefreshToken}
	}

	envelope, err := s.auth.RenewLoginWithRefreshToken(ctx, current.RefreshToken)
	if err != nil {
		return xminds.Credential{}, &xminds.RefreshError{Err: err}
	}

	credential, err := credentialFrom(envelope, s.params.Role)
	if err != nil {
		return xminds.Credential{}, &xminds.RefreshError{Err: err}
	}

	if credential.RefreshToken == "" {
		credential.RefreshToken = current.RefreshToken
	}

	s.replace(credential, "Credential refreshed")

	return credential, nil
}

func (s *Session) replace(credential xminds.Credential, msg string) {
	s.store.Set(credential)

	fields := map[string]interface{}{"role": string(credential.Role)}
	if claims, err := ParseClaims(credential.AccessToken); err == nil && !claims.ExpiresAt.IsZero() {
		fields["expires_at"] = claims.ExpiresAt
	}

	s.logger.Info(msg, fields)

	if s.listener != nil {
		s.listener(credential)
	}
}

func credentialFrom(envelope *xminds.Value, role xminds.Role) (xminds.Credential, error) {
	field, err := envelope.Field("token")
	if err != nil {
		return xminds.Credential{}, fmt.Errorf("%w: %w", xminds.ErrMissingToken, err)
	}

	token, err := field.Str()
	if err != nil || token == "" {
		return xminds.Credential{}, xminds.ErrMissingToken
	}

	credential := xminds.Credential{AccessToken: token, Role: role}

	if role.Refreshable() {
		if field, err := envelope.Field("refresh_token"); err == nil {
			if refresh, err := field.Str(); err == nil {
				credential.RefreshToken = refresh
			}
		}
	}

	return credential, nil
}
