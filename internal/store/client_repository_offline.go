package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vaultage/internal/logger"
)

// SaltGenerator produces the random offline salt on first use.
type SaltGenerator interface {
	Generate() string
}

type offlineRepository struct {
	*DB
	forced bool
	salts  SaltGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewOfflineRepository returns an [OfflineProvider] backed by db. forced
// makes IsRunningOffline report true so that login uses the local copy.
func NewOfflineRepository(db *DB, forced bool, salts SaltGenerator, logger *logger.Logger) OfflineProvider {
	return &offlineRepository{
		DB:     db,
		forced: forced,
		salts:  salts,
		now:    time.Now,
		logger: logger,
	}
}

func (o *offlineRepository) IsRunningOffline(ctx context.Context) (bool, error) {
	return o.forced, nil
}

func (o *offlineRepository) OfflineSalt(ctx context.Context) (string, error) {
	log := logger.FromContextOr(ctx, o.logger)

	salt, err := o.selectSalt(ctx)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, ErrOfflineSaltNotFound) {
		return "", err
	}

	query, args, err := buildInsertOfflineSaltQuery(o.salts.Generate(), o.now().UTC())
	if err != nil {
		return "", err
	}
	if _, err = o.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "offlineRepository.OfflineSalt").
			Msg("failed to insert offline salt")
		return "", fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	o.logger.Info().Str("func", "offlineRepository.OfflineSalt").Msg("offline salt created")

	// re-read: a concurrent insert may have won
	return o.selectSalt(ctx)
}

func (o *offlineRepository) selectSalt(ctx context.Context) (string, error) {
	log := logger.FromContextOr(ctx, o.logger)

	query, args, err := buildSelectOfflineSaltQuery()
	if err != nil {
		return "", err
	}

	var salt string
	if err = o.DB.QueryRowContext(ctx, query, args...).Scan(&salt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrOfflineSaltNotFound
		}
		log.Err(err).
			Str("func", "offlineRepository.selectSalt").
			Msg("failed to query offline salt")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return salt, nil
}

func (o *offlineRepository) OfflineCipher(ctx context.Context) (string, error) {
	log := logger.FromContextOr(ctx, o.logger)

	query, args, err := buildSelectOfflineCipherQuery()
	if err != nil {
		return "", err
	}

	var cipher string
	if err = o.DB.QueryRowContext(ctx, query, args...).Scan(&cipher); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrOfflineCipherNotFound
		}
		log.Err(err).
			Str("func", "offlineRepository.OfflineCipher").
			Msg("failed to query offline cipher")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return cipher, nil
}

func (o *offlineRepository) SaveOfflineCipher(ctx context.Context, cipher string) error {
	log := logger.FromContextOr(ctx, o.logger)

	query, args, err := buildUpdateOfflineCipherQuery(cipher, o.now().UTC())
	if err != nil {
		return err
	}

	res, err := o.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "offlineRepository.SaveOfflineCipher").
			Msg("failed to update offline cipher")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOfflineSaltNotFound
	}

	return nil
}
