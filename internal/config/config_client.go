package config

import (
	"fmt"
	"time"
)

// Default values applied by [GetClientConfig] when a setting is absent from
// every configuration source.
const (
	DefaultAPIAddress      = "https://api.robinhood.com"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultRecoveryTimeout = 5 * time.Minute
	DefaultRefreshInterval = 5 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Username is the account username used by the CLI login flow.
	Username string
	// Password is the account password. Held in memory only.
	Password string
	// AuthToken, when set, is adopted directly instead of logging in.
	AuthToken string
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIAddress is the base URL of the brokerage REST API.
	APIAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientAuth holds auth lifecycle settings used by the retry machinery.
type ClientAuth struct {
	// RecoveryTimeout bounds one re-authentication episode.
	RecoveryTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the keep-alive worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Auth contains authentication lifecycle settings.
	Auth ClientAuth
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration, applying the package defaults for any
// setting no source provided.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Username:  cfg.App.Username,
			Password:  cfg.App.Password,
			AuthToken: cfg.App.AuthToken,
			Version:   cfg.App.Version,
		},
		Adapter: ClientAdapter{
			APIAddress:     cfg.Adapter.APIAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Auth: ClientAuth{
			RecoveryTimeout: cfg.Auth.RecoveryTimeout,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.APIAddress == "" {
		cfg.Adapter.APIAddress = DefaultAPIAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Auth.RecoveryTimeout == 0 {
		cfg.Auth.RecoveryTimeout = DefaultRecoveryTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
}
