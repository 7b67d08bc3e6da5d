// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// vault client and the reference vault server. It is populated by merging
// values from environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, log level and the
	// server-side demo flag and key salts.
	App App `envPrefix:"APP_"`

	// Crypto holds key derivation cost settings of the client.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds the local SQLite database settings of the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Offline holds the client offline mode switches.
	Offline Offline `envPrefix:"OFFLINE_"`

	// Server holds listen address and timeout settings of the vault server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client transport settings: where the vault server
	// lives and who the user is.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via VAULTAGE_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// It is logged at startup.
	// Env: VAULTAGE_APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: VAULTAGE_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Demo marks the server as a demo deployment: pushes are refused with
	// EDEMO and clients skip them.
	// Env: VAULTAGE_APP_DEMO
	Demo bool `env:"DEMO"`

	// LocalKeySalt and RemoteKeySalt are the salts the server publishes for
	// key derivation. Changing them locks every user out.
	// Env: VAULTAGE_APP_LOCAL_KEY_SALT, VAULTAGE_APP_REMOTE_KEY_SALT
	LocalKeySalt  string `env:"LOCAL_KEY_SALT"`
	RemoteKeySalt string `env:"REMOTE_KEY_SALT"`
}

// Crypto holds PBKDF2 iteration counts. Zero keeps the built-in defaults;
// lower values are meant for tests and low-end devices.
type Crypto struct {
	// Iterations drives the local key, the remote key and the fingerprint.
	// Env: VAULTAGE_CRYPTO_ITERATIONS
	Iterations int `env:"ITERATIONS"`

	// OfflineIterations drives the offline key.
	// Env: VAULTAGE_CRYPTO_OFFLINE_ITERATIONS
	OfflineIterations int `env:"OFFLINE_ITERATIONS"`
}

// Storage groups the configuration of the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database. The client keeps the
// offline cipher and the server config cache in it; the server keeps the
// vaults in it, or in memory when DSN is empty.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "file:vault.db").
	// Env: VAULTAGE_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Offline holds the client offline mode switches.
type Offline struct {
	// Enabled keeps an encrypted copy of the vault in the local database
	// after every successful pull and save.
	// Env: VAULTAGE_OFFLINE_ENABLED
	Enabled bool `env:"ENABLED"`

	// Forced opens the vault from the local copy without contacting the
	// server. The vault is read-only in this mode.
	// Env: VAULTAGE_OFFLINE_FORCED
	Forced bool `env:"FORCED"`
}

// Server holds network and timeout settings for the vault server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: VAULTAGE_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: VAULTAGE_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// ServerURL is the base URL of the vault server (e.g.
	// "https://vault.example.com/api").
	// Env: VAULTAGE_ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Username is the vault account name.
	// Env: VAULTAGE_ADAPTER_USERNAME
	Username string `env:"USERNAME"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: VAULTAGE_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BasicAuthUser and BasicAuthPassword are sent as HTTP basic auth when
	// the server sits behind an authenticating proxy.
	// Env: VAULTAGE_ADAPTER_BASIC_AUTH_USER, VAULTAGE_ADAPTER_BASIC_AUTH_PASSWORD
	BasicAuthUser     string `env:"BASIC_AUTH_USER"`
	BasicAuthPassword string `env:"BASIC_AUTH_PASSWORD"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the client auto-pull job. Zero
	// disables it.
	// Env: VAULTAGE_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. A field keeps the value of the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
