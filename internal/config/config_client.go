package config

import (
	"fmt"
	"time"
)

// DefaultClientRequestTimeout applies when no adapter timeout is configured.
const DefaultClientRequestTimeout = 30 * time.Second

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is the client build version, logged at startup.
	Version string
	// LogLevel is the zerolog level name of the client log.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the vault server base URL.
	ServerURL string
	// Username is the vault account name.
	Username string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// BasicAuthUser and BasicAuthPassword enable HTTP basic auth when set.
	BasicAuthUser     string
	BasicAuthPassword string
}

// ClientCrypto holds key derivation costs. Zero keeps the defaults.
type ClientCrypto struct {
	Iterations        int
	OfflineIterations int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientOffline holds the offline mode switches.
type ClientOffline struct {
	Enabled bool
	Forced  bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the auto-pull job runs. Zero disables
	// it.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server URL, the username and transport settings.
	Adapter ClientAdapter
	// Crypto contains key derivation costs.
	Crypto ClientCrypto
	// Storage contains client storage settings.
	Storage ClientStorage
	// Offline contains the offline mode switches.
	Offline ClientOffline
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client view out of cfg and fills defaults. It
// does not validate.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	timeout := cfg.Adapter.RequestTimeout
	if timeout == 0 {
		timeout = DefaultClientRequestTimeout
	}

	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			ServerURL:         cfg.Adapter.ServerURL,
			Username:          cfg.Adapter.Username,
			RequestTimeout:    timeout,
			BasicAuthUser:     cfg.Adapter.BasicAuthUser,
			BasicAuthPassword: cfg.Adapter.BasicAuthPassword,
		},
		Crypto: ClientCrypto{
			Iterations:        cfg.Crypto.Iterations,
			OfflineIterations: cfg.Crypto.OfflineIterations,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Offline: ClientOffline{
			Enabled: cfg.Offline.Enabled,
			Forced:  cfg.Offline.Forced,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}
