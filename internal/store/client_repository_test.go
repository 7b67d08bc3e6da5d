package store

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSalt string

func (f fixedSalt) Generate() string { return string(f) }

// newTestSQLite открывает файл SQLite во временной директории и применяет миграции
func newTestSQLite(t *testing.T) *DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "nested", "client.db")
	db, err := NewConnectSQLite(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

// ── offline provider ────────────────────────────────────────────────────────

func TestOfflineRepository_SaltIsCreatedOnce(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)

	repo := NewOfflineRepository(db, false, fixedSalt("first"), logger.Nop())
	salt, err := repo.OfflineSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", salt)

	// a second generator must not replace the stored salt
	repo = NewOfflineRepository(db, false, fixedSalt("second"), logger.Nop())
	salt, err = repo.OfflineSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", salt)
}

func TestOfflineRepository_CipherRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOfflineRepository(newTestSQLite(t), false, fixedSalt("salt"), logger.Nop())

	_, err := repo.OfflineCipher(ctx)
	assert.ErrorIs(t, err, ErrOfflineCipherNotFound)

	err = repo.SaveOfflineCipher(ctx, `{"ct":"a"}`)
	assert.ErrorIs(t, err, ErrOfflineSaltNotFound)

	_, err = repo.OfflineSalt(ctx)
	require.NoError(t, err)

	// salt exists but nothing saved yet
	_, err = repo.OfflineCipher(ctx)
	assert.ErrorIs(t, err, ErrOfflineCipherNotFound)

	require.NoError(t, repo.SaveOfflineCipher(ctx, `{"ct":"a"}`))
	require.NoError(t, repo.SaveOfflineCipher(ctx, `{"ct":"b"}`))

	got, err := repo.OfflineCipher(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"ct":"b"}`, got)
}

func TestOfflineRepository_IsRunningOffline(t *testing.T) {
	db := newTestSQLite(t)

	for _, forced := range []bool{true, false} {
		got, err := NewOfflineRepository(db, forced, fixedSalt("s"), logger.Nop()).IsRunningOffline(context.Background())
		require.NoError(t, err)
		assert.Equal(t, forced, got)
	}
}

func TestOfflineRepository_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT cipher FROM offline_vault").
		WillReturnError(errors.New("disk I/O error"))

	_, err := NewOfflineRepository(db, false, fixedSalt("s"), logger.Nop()).OfflineCipher(context.Background())

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfflineRepository_LogsWithOwnLogger(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT cipher FROM offline_vault").
		WillReturnError(errors.New("disk I/O error"))

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	// в контексте логгера нет: ошибка должна попасть в логгер репозитория
	_, err := NewOfflineRepository(db, false, fixedSalt("s"), log).OfflineCipher(context.Background())

	require.Error(t, err)
	assert.Contains(t, buf.String(), "failed to query offline cipher")
	assert.Contains(t, buf.String(), "disk I/O error")
}

func TestOfflineRepository_SaveExecError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE offline_vault").
		WithArgs("cipher", sqlmock.AnyArg(), offlineVaultRowID).
		WillReturnError(errors.New("database is locked"))

	err := NewOfflineRepository(db, false, fixedSalt("s"), logger.Nop()).SaveOfflineCipher(context.Background(), "cipher")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfflineRepository_SaltInsertError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT salt FROM offline_vault").
		WillReturnRows(sqlmock.NewRows([]string{"salt"}))
	mock.ExpectExec("INSERT OR IGNORE INTO offline_vault").
		WillReturnError(errors.New("read-only database"))

	_, err := NewOfflineRepository(db, false, fixedSalt("s"), logger.Nop()).OfflineSalt(context.Background())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── config cache ────────────────────────────────────────────────────────────

func TestConfigCache_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	cache := NewConfigCacheRepository(newTestSQLite(t), logger.Nop())

	_, found, err := cache.LoadConfig(ctx, "http://vault")
	require.NoError(t, err)
	assert.False(t, found)

	first := models.ServerConfig{Version: 1, Salts: models.Salts{LocalKeySalt: "l1", RemoteKeySalt: "r1"}}
	require.NoError(t, cache.SaveConfig(ctx, "http://vault", first))

	got, found, err := cache.LoadConfig(ctx, "http://vault")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, first, got)

	second := models.ServerConfig{Version: 2, Salts: models.Salts{LocalKeySalt: "l2", RemoteKeySalt: "r2"}}
	require.NoError(t, cache.SaveConfig(ctx, "http://vault", second))

	got, _, err = cache.LoadConfig(ctx, "http://vault")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, found, err = cache.LoadConfig(ctx, "http://other")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestConfigCache_Errors(t *testing.T) {
	db, mock := newMockDB(t)
	cache := NewConfigCacheRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT version, demo, local_key_salt, remote_key_salt FROM server_configs").
		WithArgs("http://vault").
		WillReturnError(errors.New("boom"))
	mock.ExpectExec("INSERT OR REPLACE INTO server_configs").
		WillReturnError(errors.New("boom"))

	_, _, err := cache.LoadConfig(context.Background(), "http://vault")
	assert.ErrorIs(t, err, ErrScanningRow)

	err = cache.SaveConfig(context.Background(), "http://vault", models.ServerConfig{})
	assert.ErrorIs(t, err, ErrExecutingStatement)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── no-op ───────────────────────────────────────────────────────────────────

func TestNoOpStores(t *testing.T) {
	ctx := context.Background()

	var offline OfflineProvider = NoOpOfflineProvider{}
	running, err := offline.IsRunningOffline(ctx)
	require.NoError(t, err)
	assert.False(t, running)

	_, err = offline.OfflineSalt(ctx)
	assert.ErrorIs(t, err, ErrOfflineDisabled)
	_, err = offline.OfflineCipher(ctx)
	assert.ErrorIs(t, err, ErrOfflineDisabled)
	assert.ErrorIs(t, offline.SaveOfflineCipher(ctx, "c"), ErrOfflineDisabled)

	var cache ConfigCache = NoOpConfigCache{}
	require.NoError(t, cache.SaveConfig(ctx, "http://vault", models.ServerConfig{Version: 1}))
	_, found, err := cache.LoadConfig(ctx, "http://vault")
	require.NoError(t, err)
	assert.False(t, found)
}

// ── wiring ──────────────────────────────────────────────────────────────────

func TestNewClientStorages(t *testing.T) {
	ctx := context.Background()

	t.Run("no database", func(t *testing.T) {
		s, err := NewClientStorages(ctx, config.ClientConfig{}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, NoOpOfflineProvider{}, s.OfflineProvider)
		assert.IsType(t, NoOpConfigCache{}, s.ConfigCache)
		assert.NoError(t, s.Close())
	})

	t.Run("database without offline mode", func(t *testing.T) {
		cfg := config.ClientConfig{Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "c.db")}}}
		s, err := NewClientStorages(ctx, cfg, logger.Nop())
		require.NoError(t, err)
		defer s.Close()

		assert.IsType(t, NoOpOfflineProvider{}, s.OfflineProvider)
		assert.IsType(t, &configCacheRepository{}, s.ConfigCache)
	})

	t.Run("offline enabled", func(t *testing.T) {
		cfg := config.ClientConfig{
			Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "c.db")}},
			Offline: config.ClientOffline{Enabled: true},
		}
		s, err := NewClientStorages(ctx, cfg, logger.Nop())
		require.NoError(t, err)
		defer s.Close()

		require.IsType(t, &offlineRepository{}, s.OfflineProvider)
		salt, err := s.OfflineProvider.OfflineSalt(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, salt)
	})
}
