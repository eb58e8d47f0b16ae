// Package config reads client configuration from XMINDS_API_* environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration keys. With the XMINDS_API prefix, KeyDatabaseID is read from
// XMINDS_API_DATABASE_ID and so on.
const (
	KeyEndpoint          = "endpoint"
	KeyRole              = "role"
	KeyEmail             = "email"
	KeyPassword          = "pwd"
	KeyServiceName       = "service_name"
	KeyDatabaseID        = "database_id"
	KeyFrontendUserID    = "frontend_user_id"
	KeyFrontendSessionID = "frontend_session_id"
)

var keys = []string{
	KeyEndpoint,
	KeyRole,
	KeyEmail,
	KeyPassword,
	KeyServiceName,
	KeyDatabaseID,
	KeyFrontendUserID,
	KeyFrontendSessionID,
}

// File is the persisted subset of the configuration. Secrets are never
// written.
type File struct {
	Endpoint    string `yaml:"endpoint,omitempty"`
	Role        string `yaml:"role,omitempty"`
	Email       string `yaml:"email,omitempty"`
	ServiceName string `yaml:"service_name,omitempty"`
	DatabaseID  string `yaml:"database_id,omitempty"`
}

// New returns a viper instance bound to the XMINDS_API_* variables, with the
// public API endpoint as default.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	v.SetDefault(KeyEndpoint, constants.DefaultEndpoint)

	return v
}

// Load returns a viper instance reading path, or $HOME/.xminds/config.yml when
// path is empty.
func Load(path string) (*viper.Viper, error) {
	v := New()

	err := ReadFile(v, path)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// ReadFile merges the YAML file at path into v, or $HOME/.xminds/config.yml
// when path is empty. A missing default file is not an error; a missing
// explicit file is.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return nil //nolint:nilerr // no home directory means no default file
		}

		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yml")
	}

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)

	switch {
	case missing && path == "":
		return nil
	case missing:
		return fmt.Errorf("%w: %s", constants.ErrConfigNotFound, path)
	default:
		return fmt.Errorf("error reading config: %w", err)
	}
}

// FromEnv builds a config from the XMINDS_API_* environment variables.
func FromEnv() (*xminds.Config, error) {
	return FromViper(New())
}

// FromViper builds a config from v. A role, when present, must be valid.
func FromViper(v *viper.Viper) (*xminds.Config, error) {
	config := &xminds.Config{
		Endpoint:          v.GetString(KeyEndpoint),
		Email:             v.GetString(KeyEmail),
		Password:          v.GetString(KeyPassword),
		ServiceName:       v.GetString(KeyServiceName),
		DatabaseID:        v.GetString(KeyDatabaseID),
		FrontendUserID:    v.GetString(KeyFrontendUserID),
		FrontendSessionID: v.GetString(KeyFrontendSessionID),
	}

	if raw := v.GetString(KeyRole); raw != "" {
		role, err := xminds.ParseRole(raw)
		if err != nil {
			return nil, &xminds.ConfigError{Err: err}
		}

		config.Role = role
	}

	return config, nil
}

// DefaultDir returns $HOME/.xminds.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".xminds"), nil
}

// DefaultPath returns $HOME/.xminds/config.yml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yml"), nil
}

// Save writes the non-secret fields of config to path as YAML.
func Save(path string, config *xminds.Config) error {
	file := File{
		Endpoint:    config.Endpoint,
		Role:        string(config.Role),
		Email:       config.Email,
		ServiceName: config.ServiceName,
		DatabaseID:  config.DatabaseID,
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
