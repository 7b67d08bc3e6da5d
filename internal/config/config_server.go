// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DefaultServerRequestTimeout applies when no server timeout is configured.
const DefaultServerRequestTimeout = 30 * time.Second

// ServerConfig is the configuration view of the reference vault server.
type ServerConfig struct {
	App     App
	Server  Server
	Storage ServerStorage
}

// ServerStorage selects where the server keeps vaults.
type ServerStorage struct {
	// DSN is the SQLite file of the vaults. Empty keeps them in memory.
	DSN string
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the server view out of cfg and fills defaults. It
// does not validate.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	srv := cfg.Server
	if srv.RequestTimeout == 0 {
		srv.RequestTimeout = DefaultServerRequestTimeout
	}

	return &ServerConfig{
		App:     cfg.App,
		Server:  srv,
		Storage: ServerStorage{DSN: cfg.Storage.DB.DSN},
	}
}
