package constants

import "errors"

// Configuration errors.
var (
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrPasswordMissing = errors.New("password is required")
)

// Validation errors.
var (
	ErrInvalidKeyValue     = errors.New("argument must be in key=value form")
	ErrUnsupportedFormat   = errors.New("unsupported output format")
	ErrInvalidJSONArgument = errors.New("--data must be a JSON object")
	ErrNotAJWT             = errors.New("token is not a JWT")
)
