package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{APIURL: "https://api.qodefly.io", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{APIURL: "http://localhost:8000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Adapter.APIURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_RejectsInvalidAPIURL(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{APIURL: "ftp://api.qodefly.io"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.Adapter.APIURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, StoreFile, cfg.Session.Store)
	assert.Equal(t, DefaultTokenKey, cfg.Session.Key)
	assert.Equal(t, "session.json", filepath.Base(cfg.Session.FilePath))
	assert.Equal(t, DefaultLoginPath, cfg.Gateway.LoginPath)
	assert.Equal(t, DefaultCookieTTL, cfg.Gateway.CookieTTL)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSkipped(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()

	require.Error(t, b.err)
}

func TestWithJSON_OverridesEarlierSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"api_url": "https://staging.qodefly.io", "request_timeout": "5s"},
		"session": map[string]any{"store": "sqlite"},
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.qodefly.io", cfg.Adapter.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, StoreSQLite, cfg.Session.Store)
	assert.Equal(t, DefaultTokenKey, cfg.Session.Key)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_EnvThenFlags(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("ADAPTER_API_URL", "https://env.qodefly.io")
	t.Setenv("SESSION_STORE", "memory")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-api-url", "https://flag.qodefly.io"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "https://flag.qodefly.io", cfg.Adapter.APIURL)
	assert.Equal(t, StoreMemory, cfg.Session.Store)
}

func TestBuilder_BadFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown-flag"})
	require.Error(t, b.err)

	_, err := b.build()
	require.Error(t, err)
}
