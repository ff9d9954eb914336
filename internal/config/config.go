// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-robinhood client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the login identity used
	// by the CLI and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds network address and timeout settings for the outbound
	// API transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds authentication lifecycle settings such as the recovery
	// timeout of the retry machinery.
	Auth Auth `envPrefix:"AUTH_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Username is the brokerage account username used by the CLI login flow.
	// Env: APP_USERNAME
	Username string `env:"USERNAME"`

	// Password is the brokerage account password. Held in memory only.
	// Env: APP_PASSWORD
	Password string `env:"PASSWORD"`

	// AuthToken is a pre-existing API token. When set, the CLI adopts it
	// directly and skips the credential login.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network and timeout settings for the outbound transport layer.
type Adapter struct {
	// APIAddress is the base URL of the brokerage REST API
	// (e.g. "https://api.robinhood.com").
	// Env: ADAPTER_ADDRESS
	APIAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds authentication lifecycle settings.
type Auth struct {
	// RecoveryTimeout bounds a re-authentication episode after an
	// invalid-token failure. When it elapses without a successful login the
	// session escalates a critical error (e.g. "5m").
	// Env: AUTH_RECOVERY_TIMEOUT
	RecoveryTimeout time.Duration `env:"RECOVERY_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the session keep-alive worker
	// re-validates the token against the accounts endpoint.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for any field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
