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

func writeRawConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeRawConfig(t, `{
		"app": {"log_level": "info", "log_file": "/var/log/qodefly.log"},
		"adapter": {"api_url": "https://api.qodefly.io", "request_timeout": "15s"},
		"session": {
			"store": "redis",
			"key": "qodefly_token",
			"redis_addr": "cache:6379",
			"redis_password": "pw",
			"redis_db": 3
		},
		"gateway": {
			"address": ":8081",
			"cookie_name": "sid",
			"cookie_secret": "0123456789abcdef",
			"cookie_ttl": "24h",
			"cookie_secure": true,
			"login_path": "/app/login"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, App{LogLevel: "info", LogFile: "/var/log/qodefly.log"}, cfg.App)
	assert.Equal(t, Adapter{APIURL: "https://api.qodefly.io", RequestTimeout: 15 * time.Second}, cfg.Adapter)
	assert.Equal(t, Session{
		Store:         "redis",
		Key:           "qodefly_token",
		RedisAddr:     "cache:6379",
		RedisPassword: "pw",
		RedisDB:       3,
	}, cfg.Session)
	assert.Equal(t, Gateway{
		Address:      ":8081",
		CookieName:   "sid",
		CookieSecret: "0123456789abcdef",
		CookieTTL:    24 * time.Hour,
		CookieSecure: true,
		LoginPath:    "/app/login",
	}, cfg.Gateway)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeRawConfig(t, `{"adapter": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeRawConfig(t, `{"adapter": {"request_timeout": "tomorrow"}}`))
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeRawConfig(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m0s"`, string(out))
}
