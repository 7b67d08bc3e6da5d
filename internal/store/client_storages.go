package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/utils"
)

// ClientStorages groups the client-side collaborators of the vault. Both
// fields are always set; without a database they hold the no-op
// implementations.
type ClientStorages struct {
	OfflineProvider OfflineProvider
	ConfigCache     ConfigCache

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Returns no-op stores when cfg.Storage.DB.DSN is empty.
//  2. Opens (and creates, if needed) the SQLite file at the DSN.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Wires the config cache and, when offline mode is enabled or forced,
//     the offline provider.
func NewClientStorages(ctx context.Context, cfg config.ClientConfig, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.Storage.DB.DSN == "" {
		logger.Info().Msg("no local database configured, using no-op stores")
		return &ClientStorages{
			OfflineProvider: NoOpOfflineProvider{},
			ConfigCache:     NoOpConfigCache{},
		}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &ClientStorages{
		OfflineProvider: NoOpOfflineProvider{},
		ConfigCache:     NewConfigCacheRepository(db, logger),
		db:              db,
	}
	if cfg.Offline.Enabled || cfg.Offline.Forced {
		storages.OfflineProvider = NewOfflineRepository(db, cfg.Offline.Forced, utils.NewUUIDGenerator(), logger)
	}

	return storages, nil
}

// Close releases the database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
