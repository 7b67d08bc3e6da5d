package service

import (
	"context"

	"github.com/MKhiriev/go-vaultage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService is the server side of the vault protocol. Errors are the
// sentinels of this package: [ErrBadCredentials], [ErrStaleWrite],
// [ErrDemoModeRejected] and [ErrInvalidDataProvided].
type VaultService interface {
	// Config returns the public configuration served at /config.
	Config(ctx context.Context) models.ServerConfig

	// Pull returns the cipher of ref. A user without vault gets an empty
	// cipher whatever the key.
	Pull(ctx context.Context, ref models.VaultRef) (string, error)

	// Push replaces the cipher of ref. Unless req.Force is set, req.OldHash
	// must match the hash of the stored cipher.
	Push(ctx context.Context, ref models.VaultRef, req models.UpdateCipherRequest) error
}
