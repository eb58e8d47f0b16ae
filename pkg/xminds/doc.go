// Package xminds defines the public surface of the Crossing Minds API client:
// the Client interface and its per-group operation sets, the operation
// catalog, request parameter types, the JSON response envelope and the error
// taxonomy.
//
// Clients are built by the xmclient package; this package holds no transport.
//
// # Responses
//
// Every operation returns a *Value. JSON objects are field-addressable at any
// depth and keep the server's key order:
//
//	item, err := cli.GetItem(ctx, "123")
//	if err != nil { ... }
//	id, _ := item.Path("item", "id")
//
// A 204 yields an empty object. A 2xx body that is not JSON is returned as a
// string under the "body" field.
//
// # Errors
//
// Non-2xx responses become *APIError, carrying the HTTP status and whatever
// of error_code, error_name, message and error_data the server sent:
//
//	_, err := cli.GetItem(ctx, "missing")
//	if xminds.IsNotFound(err) { ... }
//
// Configuration problems are reported as *ConfigError before any network
// call, rejected logins as *AuthError and failed refreshes as *RefreshError.
//
// # Expired tokens
//
// When a call fails with error_name JwtTokenExpired the client refreshes its
// credential (logging in again with the refresh token for individual and
// service accounts) and retries the call exactly once. Root accounts have no
// refresh token, so the expiry surfaces as a *RefreshError wrapping
// ErrNoRefreshToken.
package xminds
