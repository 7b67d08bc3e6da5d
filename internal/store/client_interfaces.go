package store

import (
	"context"

	"github.com/MKhiriev/go-vaultage/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// OfflineProvider keeps an encrypted copy of the vault on the device so the
// client can start without the server.
type OfflineProvider interface {
	// IsRunningOffline reports whether the client should log in against the
	// local copy instead of the server.
	IsRunningOffline(ctx context.Context) (bool, error)
	// OfflineCipher returns the last saved snapshot.
	OfflineCipher(ctx context.Context) (string, error)
	// OfflineSalt returns the salt of the offline key, creating one on first
	// use.
	OfflineSalt(ctx context.Context) (string, error)
	// SaveOfflineCipher replaces the snapshot.
	SaveOfflineCipher(ctx context.Context, cipher string) error
}

// ConfigCache remembers the public configuration of servers already seen.
type ConfigCache interface {
	// LoadConfig returns the cached configuration of serverURL. The boolean
	// is false on a cache miss.
	LoadConfig(ctx context.Context, serverURL string) (models.ServerConfig, bool, error)
	SaveConfig(ctx context.Context, serverURL string, cfg models.ServerConfig) error
}
