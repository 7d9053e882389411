package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are written as strings ("30s", "720h").
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Session struct {
		Store         string `json:"store"`
		Key           string `json:"key"`
		FilePath      string `json:"file_path"`
		FileSecret    string `json:"file_secret"`
		SQLiteDSN     string `json:"sqlite_dsn"`
		RedisAddr     string `json:"redis_addr"`
		RedisPassword string `json:"redis_password"`
		RedisDB       int    `json:"redis_db"`
	} `json:"session,omitempty"`

	Gateway struct {
		Address      string   `json:"address"`
		CookieName   string   `json:"cookie_name"`
		CookieSecret string   `json:"cookie_secret"`
		CookieTTL    Duration `json:"cookie_ttl"`
		CookieSecure bool     `json:"cookie_secure"`
		LoginPath    string   `json:"login_path"`
	} `json:"gateway,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			APIURL:         jsonCfg.Adapter.APIURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Session: Session{
			Store:         jsonCfg.Session.Store,
			Key:           jsonCfg.Session.Key,
			FilePath:      jsonCfg.Session.FilePath,
			FileSecret:    jsonCfg.Session.FileSecret,
			SQLiteDSN:     jsonCfg.Session.SQLiteDSN,
			RedisAddr:     jsonCfg.Session.RedisAddr,
			RedisPassword: jsonCfg.Session.RedisPassword,
			RedisDB:       jsonCfg.Session.RedisDB,
		},
		Gateway: Gateway{
			Address:      jsonCfg.Gateway.Address,
			CookieName:   jsonCfg.Gateway.CookieName,
			CookieSecret: jsonCfg.Gateway.CookieSecret,
			CookieTTL:    time.Duration(jsonCfg.Gateway.CookieTTL),
			CookieSecure: jsonCfg.Gateway.CookieSecure,
			LoginPath:    jsonCfg.Gateway.LoginPath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
