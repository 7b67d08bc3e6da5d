package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-vaultage/models"
	sq "github.com/Masterminds/squirrel"
)

const vaultsTable = "vaults"

func buildSelectVaultQuery(username string) (string, []any, error) {
	query, args, err := sqlite.
		Select("remote_key", "cipher", "hash").
		From(vaultsTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertVaultQuery(vault models.StoredVault, now time.Time) (string, []any, error) {
	query, args, err := sqlite.
		Insert(vaultsTable).
		Options("OR REPLACE").
		Columns("username", "remote_key", "cipher", "hash", "updated_at").
		Values(vault.Username, vault.RemoteKey, vault.Cipher, vault.Hash, now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
