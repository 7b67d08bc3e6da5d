package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-vaultage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildVaultQueries(t *testing.T) {
	query, args, err := buildSelectVaultQuery("john")
	require.NoError(t, err)
	assert.Equal(t, "SELECT remote_key, cipher, hash FROM vaults WHERE username = ?", query)
	assert.Equal(t, []any{"john"}, args)

	now := time.Date(2026, 3, 3, 10, 4, 5, 0, time.UTC)
	vault := models.StoredVault{Username: "john", RemoteKey: "k", Cipher: "c", Hash: "h"}

	query, args, err = buildUpsertVaultQuery(vault, now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT OR REPLACE INTO vaults"), query)
	assert.Equal(t, []any{"john", "k", "c", "h", now}, args)
}
