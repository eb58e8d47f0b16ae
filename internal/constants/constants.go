package constants

import "time"

// Client identity.
const (
	// Version is the client library version reported in the User-Agent.
	Version = "1.0.0"

	// UserAgent is the default User-Agent header value.
	UserAgent = "xminds-go/" + Version

	// DefaultEndpoint is the public Crossing Minds API endpoint.
	DefaultEndpoint = "https://api.crossingminds.com/"

	// EnvPrefix prefixes every environment variable read by the client.
	EnvPrefix = "XMINDS_API"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Timeouts.
const (
	// LoginPromptTimeout bounds interactive logins from the CLI.
	LoginPromptTimeout = 2 * time.Minute
)

// Retry limits.
const (
	// MaxExpiryRetries is how many times a call is replayed after an
	// expired-token refresh.
	MaxExpiryRetries = 1
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Display limits.
const (
	// TokenPreviewLength is how much of a token the CLI prints.
	TokenPreviewLength = 12

	// MinimumArgumentCount is the minimum number of arguments for commands.
	MinimumArgumentCount = 1
)
