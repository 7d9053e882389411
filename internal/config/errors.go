package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid API settings (for example, a
	// missing or unparsable API URL, or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates an unknown token store kind or a
	// store whose required location is missing.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidGatewayConfigs indicates invalid gateway settings (for
	// example, a missing listen address or a cookie secret that is too short).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
)
