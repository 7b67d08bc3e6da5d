package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/models"
)

type configCacheRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewConfigCacheRepository returns a [ConfigCache] backed by db.
func NewConfigCacheRepository(db *DB, logger *logger.Logger) ConfigCache {
	return &configCacheRepository{DB: db, now: time.Now, logger: logger}
}

func (c *configCacheRepository) LoadConfig(ctx context.Context, serverURL string) (models.ServerConfig, bool, error) {
	log := logger.FromContextOr(ctx, c.logger)

	query, args, err := buildSelectServerConfigQuery(serverURL)
	if err != nil {
		return models.ServerConfig{}, false, err
	}

	var cfg models.ServerConfig
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(
		&cfg.Version,
		&cfg.Demo,
		&cfg.Salts.LocalKeySalt,
		&cfg.Salts.RemoteKeySalt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServerConfig{}, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "configCacheRepository.LoadConfig").
			Str("server", serverURL).
			Msg("failed to query cached server config")
		return models.ServerConfig{}, false, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return cfg, true, nil
}

func (c *configCacheRepository) SaveConfig(ctx context.Context, serverURL string, cfg models.ServerConfig) error {
	log := logger.FromContextOr(ctx, c.logger)

	query, args, err := buildUpsertServerConfigQuery(serverURL, cfg, c.now().UTC())
	if err != nil {
		return err
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "configCacheRepository.SaveConfig").
			Str("server", serverURL).
			Msg("failed to cache server config")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
