// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Session store kinds accepted by Session.Store.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Defaults applied before any other source.
const (
	DefaultAPIURL         = "https://api.qodefly.io"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenKey       = "qodefly_token"
	DefaultRedisAddr      = "localhost:6379"
	DefaultGatewayAddress = ":8080"
	DefaultCookieName     = "qodefly_session"
	DefaultCookieTTL      = 30 * 24 * time.Hour
	DefaultLoginPath      = "/app/login"
	DefaultLogLevel       = "debug"
)

// StructuredConfig is the top-level configuration container shared by the
// terminal client and the session gateway. It is populated by merging
// defaults, an optional .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API location and transport timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session selects and configures the durable token store.
	Session Session `envPrefix:"SESSION_"`

	// Gateway holds the session gateway listener and cookie settings.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// JSONFilePath is the optional path to a JSON configuration file, merged
	// last. Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before environment parsing.
	// Env: DOTENV
	DotEnvPath string `env:"DOTENV"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the location of the remote qodefly API.
type Adapter struct {
	// APIURL is the base URL every request path is appended to.
	// Env: ADAPTER_API_URL (aliases: QODEFLY_API_URL, NEXT_PUBLIC_API_URL)
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session configures where the bearer token is persisted.
type Session struct {
	// Store is one of memory, file, sqlite or redis.
	// Env: SESSION_STORE
	Store string `env:"STORE"`

	// Key is the fixed storage key the token lives under.
	// Env: SESSION_KEY
	Key string `env:"KEY"`

	// FilePath is the JSON document used by the file store.
	// Env: SESSION_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// FileSecret, when set, seals the token at rest in the file store.
	// Env: SESSION_FILE_SECRET
	FileSecret string `env:"FILE_SECRET"`

	// SQLiteDSN is the database file used by the sqlite store.
	// Env: SESSION_SQLITE_DSN
	SQLiteDSN string `env:"SQLITE_DSN"`

	// RedisAddr is the host:port of the redis store.
	// Env: SESSION_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`

	// RedisPassword authenticates against redis.
	// Env: SESSION_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB selects the redis logical database.
	// Env: SESSION_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
}

// Gateway holds the session gateway settings.
type Gateway struct {
	// Address is the TCP address the gateway listens on ("host:port").
	// Env: GATEWAY_ADDRESS
	Address string `env:"ADDRESS"`

	// CookieName is the name of the session cookie.
	// Env: GATEWAY_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// CookieSecret signs the session cookie envelope. Must be kept
	// confidential.
	// Env: GATEWAY_COOKIE_SECRET
	CookieSecret string `env:"COOKIE_SECRET"`

	// CookieTTL is the lifetime of the session cookie (e.g. "720h").
	// Env: GATEWAY_COOKIE_TTL
	CookieTTL time.Duration `env:"COOKIE_TTL"`

	// CookieSecure restricts the cookie to HTTPS.
	// Env: GATEWAY_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// LoginPath is the route front ends navigate to when the session expires.
	// Env: GATEWAY_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. .env file (variables already set in the environment are kept)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	dir := defaultDataDir()

	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Adapter: Adapter{
			APIURL:         DefaultAPIURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Session: Session{
			Store:     StoreFile,
			Key:       DefaultTokenKey,
			FilePath:  filepath.Join(dir, "session.json"),
			SQLiteDSN: filepath.Join(dir, "session.db"),
			RedisAddr: DefaultRedisAddr,
		},
		Gateway: Gateway{
			Address:    DefaultGatewayAddress,
			CookieName: DefaultCookieName,
			CookieTTL:  DefaultCookieTTL,
			LoginPath:  DefaultLoginPath,
		},
		DotEnvPath: ".env",
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "qodefly")
}
