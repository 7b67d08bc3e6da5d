package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(&StructuredConfig{
		Adapter: Adapter{ServerURL: "http://localhost:8080", Username: "alice"},
		Storage: Storage{DB: DB{DSN: "file:vault.db"}},
	})
}

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := validClientConfig()

	assert.Equal(t, DefaultClientRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Workers.SyncInterval)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:    "missing server url",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.ServerURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "forced offline needs no server url",
			mutate: func(cfg *ClientConfig) {
				cfg.Adapter.ServerURL = ""
				cfg.Offline.Forced = true
			},
		},
		{
			name:    "missing username",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.Username = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "half of basic auth",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.BasicAuthUser = "proxy" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "offline without dsn",
			mutate: func(cfg *ClientConfig) {
				cfg.Offline.Enabled = true
				cfg.Storage.DB.DSN = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "offline with in-memory dsn",
			mutate: func(cfg *ClientConfig) {
				cfg.Offline.Enabled = true
				cfg.Storage.DB.DSN = "file::memory:"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:   "online without dsn",
			mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
		},
		{
			name:    "negative iterations",
			mutate:  func(cfg *ClientConfig) { cfg.Crypto.OfflineIterations = -5 },
			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name:    "negative sync interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.SyncInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	base := StructuredConfig{
		App:    App{LocalKeySalt: "deadbeef", RemoteKeySalt: "0123456789"},
		Server: Server{HTTPAddress: "localhost:8080"},
	}

	cfg := NewServerConfig(&base)
	assert.NoError(t, cfg.validate())
	assert.Equal(t, DefaultServerRequestTimeout, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Storage.DSN)

	withDB := base
	withDB.Storage.DB.DSN = "vaults.db"
	assert.Equal(t, "vaults.db", NewServerConfig(&withDB).Storage.DSN)

	noAddr := base
	noAddr.Server.HTTPAddress = ""
	assert.ErrorIs(t, NewServerConfig(&noAddr).validate(), ErrInvalidServerConfigs)

	noSalt := base
	noSalt.App.RemoteKeySalt = ""
	assert.ErrorIs(t, NewServerConfig(&noSalt).validate(), ErrInvalidAppConfigs)

	sameSalt := base
	sameSalt.App.RemoteKeySalt = sameSalt.App.LocalKeySalt
	assert.ErrorIs(t, NewServerConfig(&sameSalt).validate(), ErrInvalidAppConfigs)
}
