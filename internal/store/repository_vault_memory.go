// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/models"
)

// memoryVaultRepository keeps server vaults in a map. It backs the
// reference server and the end-to-end tests; nothing survives a restart.
type memoryVaultRepository struct {
	mu     sync.Mutex
	vaults map[string]models.StoredVault
	logger *logger.Logger
}

func NewMemoryVaultRepository(logger *logger.Logger) VaultRepository {
	return &memoryVaultRepository{
		vaults: make(map[string]models.StoredVault),
		logger: logger,
	}
}

func (m *memoryVaultRepository) GetVault(ctx context.Context, username string) (models.StoredVault, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.vaults[username]
	if !ok {
		return models.StoredVault{}, ErrVaultNotFound
	}
	return v, nil
}

func (m *memoryVaultRepository) UpdateVault(ctx context.Context, username string, fn func(current models.StoredVault, found bool) (models.StoredVault, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, found := m.vaults[username]
	next, err := fn(current, found)
	if err != nil {
		return err
	}

	next.Username = username
	m.vaults[username] = next
	m.logger.Debug().Str("func", "memoryVaultRepository.UpdateVault").
		Str("username", username).Bool("created", !found).Msg("vault stored")
	return nil
}
