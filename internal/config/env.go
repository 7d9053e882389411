// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// apiURLAliases are read, in order, when ADAPTER_API_URL is not set. The
// second one is the variable name used by the web front end.
var apiURLAliases = []string{"QODEFLY_API_URL", "NEXT_PUBLIC_API_URL"}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Adapter.APIURL == "" {
		for _, name := range apiURLAliases {
			if v := os.Getenv(name); v != "" {
				cfg.Adapter.APIURL = v
				break
			}
		}
	}

	return nil
}

// loadDotEnv loads variables from path into the process environment without
// overriding ones that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}

	return nil
}
