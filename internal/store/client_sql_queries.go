// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-vaultage/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	offlineVaultTable  = "offline_vault"
	serverConfigsTable = "server_configs"

	// offlineVaultRowID pins the single row of offline_vault.
	offlineVaultRowID = 1
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectOfflineSaltQuery() (string, []any, error) {
	query, args, err := sqlite.
		Select("salt").
		From(offlineVaultTable).
		Where(sq.Eq{"id": offlineVaultRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectOfflineCipherQuery() (string, []any, error) {
	query, args, err := sqlite.
		Select("cipher").
		From(offlineVaultTable).
		Where(sq.Eq{"id": offlineVaultRowID}).
		Where(sq.NotEq{"cipher": ""}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertOfflineSaltQuery keeps an existing salt: the snapshot on disk
// is encrypted with a key derived from it.
func buildInsertOfflineSaltQuery(salt string, now time.Time) (string, []any, error) {
	query, args, err := sqlite.
		Insert(offlineVaultTable).
		Options("OR IGNORE").
		Columns("id", "salt", "cipher", "updated_at").
		Values(offlineVaultRowID, salt, "", now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateOfflineCipherQuery(cipher string, now time.Time) (string, []any, error) {
	query, args, err := sqlite.
		Update(offlineVaultTable).
		Set("cipher", cipher).
		Set("updated_at", now).
		Where(sq.Eq{"id": offlineVaultRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectServerConfigQuery(serverURL string) (string, []any, error) {
	query, args, err := sqlite.
		Select("version", "demo", "local_key_salt", "remote_key_salt").
		From(serverConfigsTable).
		Where(sq.Eq{"server_url": serverURL}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertServerConfigQuery(serverURL string, cfg models.ServerConfig, now time.Time) (string, []any, error) {
	query, args, err := sqlite.
		Insert(serverConfigsTable).
		Options("OR REPLACE").
		Columns("server_url", "version", "demo", "local_key_salt", "remote_key_salt", "cached_at").
		Values(serverURL, cfg.Version, cfg.Demo, cfg.Salts.LocalKeySalt, cfg.Salts.RemoteKeySalt, now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
