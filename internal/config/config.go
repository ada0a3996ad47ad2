// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied before any other source is merged.
const (
	DefaultHTTPAddress     = "localhost:3000"
	DefaultSessionIssuer   = "propal-dashboard"
	DefaultSessionDuration = 7 * 24 * time.Hour
	DefaultRequestTimeout  = 30 * time.Second
	DefaultUsersFile       = "data/users.json"
	DefaultAdapterAddress  = "localhost:3000"
	DefaultClientDSN       = "propal-client.db"
	DefaultDotEnvFile      = ".env"

	// EnvironmentProduction enables Secure session cookies.
	EnvironmentProduction = "production"
)

// StructuredConfig is the top-level configuration container for the
// propal-dashboard server and terminal client. It is populated by merging
// defaults, a .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session signing parameters, environment and version.
	App App `envPrefix:"APP_"`

	// Storage holds the user store backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and the request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the terminal client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds terminal client local state settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSignKey is the HMAC key the session cookie is signed with.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of every session cookie.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is the session cookie lifetime.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// Environment is the deployment environment name.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether the app runs in the production environment.
func (a App) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}

// Storage groups the configuration for the server storage backends.
type Storage struct {
	// DB holds the PostgreSQL connection settings. When DSN is set the
	// PostgreSQL user repository is used instead of the JSON file.
	DB DB `envPrefix:"DB_"`

	// Files holds file-system storage settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system storage settings.
type Files struct {
	// UsersFile is the path of the JSON user collection.
	// Env: STORAGE_FILES_USERS_FILE
	UsersFile string `env:"USERS_FILE"`

	// STTCatalog optionally overrides the embedded speech-to-text catalog.
	// Env: STORAGE_FILES_STT_CATALOG
	STTCatalog string `env:"STT_CATALOG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health service when set.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings of the terminal client.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings of the terminal client local store.
type Client struct {
	DB DB `envPrefix:"DB_"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   DefaultSessionIssuer,
			SessionDuration: DefaultSessionDuration,
		},
		Storage: Storage{
			Files: Files{UsersFile: DefaultUsersFile},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			DB: DB{DSN: DefaultClientDSN},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory (never overrides the real environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetServerConfig returns the structured config after checking the settings
// the HTTP server cannot start without.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	if err = cfg.validateServer(); err != nil {
		return nil, err
	}

	return cfg, nil
}
