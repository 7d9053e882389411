package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructured() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Gateway.CookieSecret = "0123456789abcdef"
	return cfg
}

func TestNewClientConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "memory store", mutate: func(cfg *StructuredConfig) { cfg.Session.Store = StoreMemory }},
		{name: "sqlite store", mutate: func(cfg *StructuredConfig) { cfg.Session.Store = StoreSQLite }},
		{name: "redis store", mutate: func(cfg *StructuredConfig) { cfg.Session.Store = StoreRedis }},
		{
			name:    "missing api url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.APIURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "relative api url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.APIURL = "/api" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown store",
			mutate:  func(cfg *StructuredConfig) { cfg.Session.Store = "etcd" },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name: "in-memory sqlite",
			mutate: func(cfg *StructuredConfig) {
				cfg.Session.Store = StoreSQLite
				cfg.Session.SQLiteDSN = ":memory:"
			},
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name: "file store without path",
			mutate: func(cfg *StructuredConfig) {
				cfg.Session.FilePath = ""
			},
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name: "redis store without address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Session.Store = StoreRedis
				cfg.Session.RedisAddr = ""
			},
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "empty key",
			mutate:  func(cfg *StructuredConfig) { cfg.Session.Key = "" },
			wantErr: ErrInvalidSessionConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructured()
			tt.mutate(cfg)

			clientCfg, err := NewClientConfig(cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, clientCfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg.Session, clientCfg.Session)
			assert.Equal(t, cfg.Adapter, clientCfg.Adapter)
		})
	}
}

func TestNewGatewayConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults with secret are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing secret",
			mutate:  func(cfg *StructuredConfig) { cfg.Gateway.CookieSecret = "" },
			wantErr: ErrInvalidGatewayConfigs,
		},
		{
			name:    "short secret",
			mutate:  func(cfg *StructuredConfig) { cfg.Gateway.CookieSecret = "short" },
			wantErr: ErrInvalidGatewayConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Gateway.Address = "" },
			wantErr: ErrInvalidGatewayConfigs,
		},
		{
			name:    "non positive ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.Gateway.CookieTTL = -time.Second },
			wantErr: ErrInvalidGatewayConfigs,
		},
		{
			name:    "bad api url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.APIURL = "https://" },
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructured()
			tt.mutate(cfg)

			gatewayCfg, err := NewGatewayConfig(cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultCookieName, gatewayCfg.CookieName)
			assert.Equal(t, DefaultLoginPath, gatewayCfg.LoginPath)
		})
	}
}
