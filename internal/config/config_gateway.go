package config

import "fmt"

// GatewayConfig is the session gateway's view of [StructuredConfig].
type GatewayConfig struct {
	App     App
	Adapter Adapter
	Gateway
}

// GetGatewayConfig loads the merged structured configuration and returns the
// validated gateway view.
func GetGatewayConfig() (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewGatewayConfig(cfg)
}

// NewGatewayConfig maps the fields relevant to the gateway and validates them.
func NewGatewayConfig(cfg *StructuredConfig) (*GatewayConfig, error) {
	gatewayCfg := &GatewayConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Gateway: cfg.Gateway,
	}

	if err := gatewayCfg.validate(); err != nil {
		return nil, err
	}
	return gatewayCfg, nil
}
