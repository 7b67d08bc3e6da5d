package store

import (
	"context"

	"github.com/MKhiriev/go-vaultage/models"
)

// NoOpOfflineProvider is the [OfflineProvider] of clients without offline
// support. It never runs offline and refuses everything else with
// [ErrOfflineDisabled].
type NoOpOfflineProvider struct{}

func (NoOpOfflineProvider) IsRunningOffline(context.Context) (bool, error) { return false, nil }

func (NoOpOfflineProvider) OfflineCipher(context.Context) (string, error) {
	return "", ErrOfflineDisabled
}

func (NoOpOfflineProvider) OfflineSalt(context.Context) (string, error) {
	return "", ErrOfflineDisabled
}

func (NoOpOfflineProvider) SaveOfflineCipher(context.Context, string) error {
	return ErrOfflineDisabled
}

// NoOpConfigCache always misses and forgets what it is given.
type NoOpConfigCache struct{}

func (NoOpConfigCache) LoadConfig(context.Context, string) (models.ServerConfig, bool, error) {
	return models.ServerConfig{}, false, nil
}

func (NoOpConfigCache) SaveConfig(context.Context, string, models.ServerConfig) error { return nil }
