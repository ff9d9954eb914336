package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Username: "jdoe"}},
		&StructuredConfig{Adapter: Adapter{APIAddress: "https://api.example.com"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "jdoe", cfg.App.Username)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.APIAddress)
}

// TestBuild_FirstNonZeroFieldWins verifies mergo's merge semantics: an
// already-set field is not overridden by a later source.
func TestBuild_FirstNonZeroFieldWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{RecoveryTimeout: time.Minute}},
		&StructuredConfig{Auth: Auth{RecoveryTimeout: time.Hour}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Auth.RecoveryTimeout)
}

// ── getJSONFilePath ───────────────────────────────────────────────────────────

func TestGetJSONFilePath_PrefersEarlierSource(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/from/env.json"},
		&StructuredConfig{JSONFilePath: "/from/flags.json"},
	)

	assert.Equal(t, "/from/env.json", b.getJSONFilePath())
}

func TestGetJSONFilePath_Empty(t *testing.T) {
	assert.Empty(t, newConfigBuilder().getJSONFilePath())
}

// ── ClientConfig ──────────────────────────────────────────────────────────────

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultAPIAddress, cfg.Adapter.APIAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRecoveryTimeout, cfg.Auth.RecoveryTimeout)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate_MissingAdapter(t *testing.T) {
	cfg := &ClientConfig{
		Auth:    ClientAuth{RecoveryTimeout: time.Minute},
		Workers: ClientWorkers{RefreshInterval: time.Minute},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestClientConfig_Validate_MissingAuth(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{APIAddress: "https://api.example.com", RequestTimeout: time.Second},
		Workers: ClientWorkers{RefreshInterval: time.Minute},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}
