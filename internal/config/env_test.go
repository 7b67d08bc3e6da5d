// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv clears every VAULTAGE_* variable for the test and sets vars, given
// without the prefix.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, EnvPrefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	for k, v := range vars {
		t.Setenv(EnvPrefix+k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnv(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":         "1.2.3",
		"APP_LOG_LEVEL":       "debug",
		"APP_DEMO":            "true",
		"APP_LOCAL_KEY_SALT":  "deadbeef",
		"APP_REMOTE_KEY_SALT": "0123456789",

		"CRYPTO_ITERATIONS":         "1000",
		"CRYPTO_OFFLINE_ITERATIONS": "5000",

		"OFFLINE_ENABLED": "true",
		"OFFLINE_FORCED":  "false",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_SERVER_URL":          "https://vault.example.com/api/",
		"ADAPTER_USERNAME":            "john cena",
		"ADAPTER_REQUEST_TIMEOUT":     "10s",
		"ADAPTER_BASIC_AUTH_USER":     "proxy",
		"ADAPTER_BASIC_AUTH_PASSWORD": "proxy-secret",

		"WORKERS_SYNC_INTERVAL": "5m",

		"STORAGE_DB_DATABASE_URI": "file:vault.db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	want := &StructuredConfig{
		App: App{
			Version:       "1.2.3",
			LogLevel:      "debug",
			Demo:          true,
			LocalKeySalt:  "deadbeef",
			RemoteKeySalt: "0123456789",
		},
		Crypto:  Crypto{Iterations: 1000, OfflineIterations: 5000},
		Storage: Storage{DB: DB{DSN: "file:vault.db"}},
		Offline: Offline{Enabled: true},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		Adapter: Adapter{
			ServerURL:         "https://vault.example.com/api/",
			Username:          "john cena",
			RequestTimeout:    10 * time.Second,
			BasicAuthUser:     "proxy",
			BasicAuthPassword: "proxy-secret",
		},
		Workers:      Workers{SyncInterval: 5 * time.Minute},
		JSONFilePath: "/path/to/config.json",
	}
	assert.Equal(t, want, cfg)
}

func TestParseEnv_IgnoresUnprefixedNames(t *testing.T) {
	setEnv(t, nil)
	t.Setenv("ADAPTER_USERNAME", "someone else")
	t.Setenv("CONFIG", "/etc/other.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
		"CRYPTO_ITERATIONS":       "many",
		"OFFLINE_ENABLED":         "sometimes",
	} {
		t.Run(key, func(t *testing.T) {
			setEnv(t, map[string]string{key: value})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "env configs")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	for value, want := range map[string]time.Duration{
		"2h":    2 * time.Hour,
		"45m":   45 * time.Minute,
		"1h30m": 90 * time.Minute,
		"250ms": 250 * time.Millisecond,
	} {
		t.Run(value, func(t *testing.T) {
			setEnv(t, map[string]string{"WORKERS_SYNC_INTERVAL": value})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, want, cfg.Workers.SyncInterval)
		})
	}
}
