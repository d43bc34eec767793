// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// topologic server and client. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the model config diagnostics switch.
	App App `envPrefix:"APP_"`

	// Storage holds the registry database and the web app root settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the server the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds output settings of cmd/client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds positional command-line arguments left after flag parsing.
	Args []string `env:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// StrictConfig makes the server log every line of a model_config.ini
	// that the parser dropped. Parsing results are unchanged.
	// Env: APP_STRICT_CONFIG
	StrictConfig bool `env:"STRICT_CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the model registry database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for model directories.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the model registry.
type DB struct {
	// DSN selects the backend: "postgres://" and "postgresql://" DSNs use
	// PostgreSQL, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for model directories.
type Files struct {
	// WebAppPath is the root directory holding one sub-directory per model:
	// <WebAppPath>/<table>/model_config.ini, appConfig.json and dist/.
	// Env: STORAGE_FILES_WEB_APP_PATH
	WebAppPath string `env:"WEB_APP_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings of the HTTP client used by cmd/client.
type Adapter struct {
	// HTTPAddress is the base URL of the topologic server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings that only affect cmd/client.
type Client struct {
	// CopyToClipboard copies a looked-up config value to the system
	// clipboard in addition to printing it.
	// Env: CLIENT_COPY
	CopyToClipboard bool `env:"COPY"`

	// ShowInfo prints the registry row of a model instead of its config.
	// Env: CLIENT_INFO
	ShowInfo bool `env:"INFO"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// WatchDebounce is the delay between the last change of a
	// model_config.ini and the invalidation of its cached parse.
	// Env: WORKERS_WATCH_DEBOUNCE
	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
