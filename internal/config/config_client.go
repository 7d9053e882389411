package config

import (
	"fmt"
)

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	// App contains logging settings.
	App App
	// Adapter contains the API location and request timeout.
	Adapter Adapter
	// Session selects the durable token store.
	Session Session
}

// GetClientConfig loads the merged structured configuration and returns the
// validated client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields relevant to the client runtime and
// validates them.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Session: cfg.Session,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
