// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// rowQuerier is implemented by both *sql.DB and *sql.Tx.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type vaultRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewVaultRepository returns a [VaultRepository] keeping the vaults in the
// vaults table of db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{DB: db, now: time.Now, logger: logger}
}

func (r *vaultRepository) GetVault(ctx context.Context, username string) (models.StoredVault, error) {
	vault, found, err := r.selectVault(ctx, r.DB, username)
	if err != nil {
		return models.StoredVault{}, err
	}
	if !found {
		return models.StoredVault{}, ErrVaultNotFound
	}
	return vault, nil
}

// UpdateVault reads, transforms and writes the vault inside one
// transaction, so a concurrent push cannot slip between the hash check done
// by fn and the write.
func (r *vaultRepository) UpdateVault(ctx context.Context, username string, fn func(current models.StoredVault, found bool) (models.StoredVault, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContextOr(ctx, r.logger)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.UpdateVault").Msg("failed to begin transaction")
		return fmt.Errorf("%w: begin transaction: %v", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	current, found, err := r.selectVault(ctx, tx, username)
	if err != nil {
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}
	next.Username = username

	query, args, err := buildUpsertVaultQuery(next, r.now().UTC())
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.UpdateVault").
			Str("username", username).
			Msg("failed to store vault")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "vaultRepository.UpdateVault").Msg("failed to commit transaction")
		return fmt.Errorf("%w: commit: %v", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "vaultRepository.UpdateVault").
		Str("username", username).Bool("created", !found).Msg("vault stored")
	return nil
}

func (r *vaultRepository) selectVault(ctx context.Context, q rowQuerier, username string) (models.StoredVault, bool, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectVaultQuery(username)
	if err != nil {
		return models.StoredVault{}, false, err
	}

	vault := models.StoredVault{Username: username}
	err = q.QueryRowContext(ctx, query, args...).Scan(&vault.RemoteKey, &vault.Cipher, &vault.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredVault{}, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.selectVault").
			Str("username", username).
			Msg("failed to query vault")
		return models.StoredVault{}, false, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return vault, true, nil
}
