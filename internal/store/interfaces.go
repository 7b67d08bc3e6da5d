package store

import (
	"context"

	"github.com/MKhiriev/go-vaultage/models"
)

// VaultRepository stores the server-side ciphers, one per username.
type VaultRepository interface {
	// GetVault returns the vault of username or [ErrVaultNotFound].
	GetVault(ctx context.Context, username string) (models.StoredVault, error)

	// UpdateVault atomically replaces the vault of username with the result
	// of fn. found is false when no vault exists yet. An error returned by
	// fn aborts the update and is passed through.
	UpdateVault(ctx context.Context, username string, fn func(current models.StoredVault, found bool) (models.StoredVault, error)) error
}
