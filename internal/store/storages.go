package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	VaultRepository VaultRepository

	db *DB
}

// NewStorages builds the server repositories. With an empty cfg.DSN the
// vaults live in memory; otherwise they are kept in the SQLite file at
// cfg.DSN, migrated on start.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	if cfg.DSN == "" {
		logger.Info().Str("func", "NewStorages").Msg("no database configured, vaults are kept in memory")
		return &Storages{VaultRepository: NewMemoryVaultRepository(logger)}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{VaultRepository: NewVaultRepository(db, logger), db: db}, nil
}

// Close releases the database, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
