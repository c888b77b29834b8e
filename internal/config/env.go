// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the contact-book settings from the environment. Variable
// names come from the `env` and `envPrefix` tags of [StructuredConfig], e.g.
// STORAGE_DB_DATABASE_URI or APP_TOKEN_DURATION.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
