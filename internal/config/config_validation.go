// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// minCookieSecretLen is the shortest accepted HS256 signing secret.
const minCookieSecretLen = 16

// validate checks the invariants shared by every runtime. Runtime-specific
// rules live on [ClientConfig] and [GatewayConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.APIURL != "" {
		if err := validateAPIURL(cfg.Adapter.APIURL); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	switch cfg.Session.Store {
	case StoreMemory:
	case StoreFile:
		if cfg.Session.FilePath == "" {
			return fmt.Errorf("%w: file store requires a path", ErrInvalidSessionConfigs)
		}
	case StoreSQLite:
		if cfg.Session.SQLiteDSN == "" || strings.Contains(cfg.Session.SQLiteDSN, "memory") {
			return fmt.Errorf("%w: sqlite store requires a database file", ErrInvalidSessionConfigs)
		}
	case StoreRedis:
		if cfg.Session.RedisAddr == "" {
			return fmt.Errorf("%w: redis store requires an address", ErrInvalidSessionConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidSessionConfigs, cfg.Session.Store)
	}

	if cfg.Session.Key == "" {
		return fmt.Errorf("%w: empty storage key", ErrInvalidSessionConfigs)
	}

	return nil
}

func (cfg *GatewayConfig) validate() error {
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	if cfg.Address == "" || cfg.CookieName == "" || cfg.LoginPath == "" {
		return ErrInvalidGatewayConfigs
	}
	if len(cfg.CookieSecret) < minCookieSecretLen {
		return fmt.Errorf("%w: cookie secret must be at least %d bytes", ErrInvalidGatewayConfigs, minCookieSecretLen)
	}
	if cfg.CookieTTL <= 0 {
		return fmt.Errorf("%w: cookie ttl must be positive", ErrInvalidGatewayConfigs)
	}

	return nil
}

func validateAdapter(cfg Adapter) error {
	if cfg.APIURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return validateAPIURL(cfg.APIURL)
}

func validateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: api url must be http(s)", ErrInvalidAdapterConfigs)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: api url must include a host", ErrInvalidAdapterConfigs)
	}
	return nil
}
