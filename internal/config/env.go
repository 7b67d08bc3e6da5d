// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name built from the `env` and
// `envPrefix` tags, e.g. VAULTAGE_ADAPTER_SERVER_URL.
const EnvPrefix = "VAULTAGE_"

// parseEnv fills cfg from the VAULTAGE_* environment variables.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
