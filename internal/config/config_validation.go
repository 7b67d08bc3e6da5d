// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks invariants of the merged [StructuredConfig] that hold for
// both the client and the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.Iterations < 0 || cfg.Crypto.OfflineIterations < 0 {
		return ErrInvalidCryptoConfigs
	}
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !cfg.Offline.Forced && cfg.Adapter.ServerURL == "" {
		return fmt.Errorf("%w: server URL is required unless running offline", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if (cfg.Adapter.BasicAuthUser == "") != (cfg.Adapter.BasicAuthPassword == "") {
		return fmt.Errorf("%w: basic auth needs both user and password", ErrInvalidAdapterConfigs)
	}

	if cfg.Offline.Enabled || cfg.Offline.Forced {
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return fmt.Errorf("%w: offline mode needs a database file", ErrInvalidStorageConfigs)
		}
	}

	if cfg.Crypto.Iterations < 0 || cfg.Crypto.OfflineIterations < 0 {
		return ErrInvalidCryptoConfigs
	}
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.App.LocalKeySalt == "" || cfg.App.RemoteKeySalt == "" {
		return fmt.Errorf("%w: both key salts are required", ErrInvalidAppConfigs)
	}
	if cfg.App.LocalKeySalt == cfg.App.RemoteKeySalt {
		return fmt.Errorf("%w: local and remote key salts must differ", ErrInvalidAppConfigs)
	}
	return nil
}
