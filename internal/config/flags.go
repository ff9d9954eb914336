package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base address (e.g. https://api.robinhood.com)
//	-u account username
//	-token pre-existing auth token (skips credential login)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-recovery-timeout re-authentication timeout (e.g., "5m")
//	-refresh-interval session keep-alive interval (e.g., "5m")
//
// The account password is deliberately not accepted as a flag; it would leak
// into shell history and process listings. Use APP_PASSWORD instead.
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var username string
	var authToken string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var recoveryTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&apiAddress, "a", "", "API base address")
	flag.StringVar(&username, "u", "", "Account username")
	flag.StringVar(&authToken, "token", "", "Pre-existing auth token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&recoveryTimeout, "recovery-timeout", 0, "Re-authentication timeout (e.g., 5m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Session keep-alive interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Username:  username,
			AuthToken: authToken,
		},
		Adapter: Adapter{
			APIAddress:     apiAddress,
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			RecoveryTimeout: recoveryTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
