package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ───────────────────────────────────────────────────────────────

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		addr NetAddress
		want string
	}{
		{NetAddress{}, ""},
		{NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{NetAddress{Port: 8080}, ":8080"},
		{NetAddress{Host: "::1", Port: 8443}, "[::1]:8443"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.addr.String())
	}
}

func TestNetAddress_Set(t *testing.T) {
	valid := map[string]NetAddress{
		"localhost:8080": {Host: "localhost", Port: 8080},
		"127.0.0.1:9090": {Host: "127.0.0.1", Port: 9090},
		":8080":          {Port: 8080},
		"[::1]:8443":     {Host: "::1", Port: 8443},
		"0.0.0.0:65535":  {Host: "0.0.0.0", Port: 65535},
	}
	for input, want := range valid {
		t.Run(input, func(t *testing.T) {
			var addr NetAddress
			require.NoError(t, addr.Set(input))
			assert.Equal(t, want, addr)
		})
	}

	// ни один из этих адресов не должен менять значение
	invalid := []string{
		"",
		":",
		"localhost8080",
		"host:port:extra",
		"localhost:abc",
		"localhost:-1",
		"localhost:0",
		"localhost:65536",
		"invalid.host:8080",
		"::1:8080",
	}
	for _, input := range invalid {
		t.Run("invalid "+input, func(t *testing.T) {
			addr := NetAddress{Host: "keep", Port: 1}
			err := addr.Set(input)
			require.ErrorIs(t, err, errInvalidNetAddress)
			assert.Equal(t, NetAddress{Host: "keep", Port: 1}, addr)
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "server flags",
			args: []string{
				"-a", "localhost:8080",
				"-request-timeout", "30s",
				"-demo",
				"-local-key-salt", "deadbeef",
				"-remote-key-salt", "0123456789",
				"-log-level", "debug",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.True(t, cfg.App.Demo)
				assert.Equal(t, "deadbeef", cfg.App.LocalKeySalt)
				assert.Equal(t, "0123456789", cfg.App.RemoteKeySalt)
				assert.Equal(t, "debug", cfg.App.LogLevel)
			},
		},
		{
			name: "client flags",
			args: []string{
				"-s", "http://localhost:8080",
				"-u", "john cena",
				"-adapter-timeout", "5s",
				"-basic-auth-user", "proxy",
				"-basic-auth-password", "secret",
				"-d", "file:vault.db",
				"-iterations", "10",
				"-offline-iterations", "20",
				"-offline",
				"-force-offline",
				"-sync-interval", "1m",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServerURL)
				assert.Equal(t, "john cena", cfg.Adapter.Username)
				assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "proxy", cfg.Adapter.BasicAuthUser)
				assert.Equal(t, "secret", cfg.Adapter.BasicAuthPassword)
				assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)
				assert.Equal(t, Crypto{Iterations: 10, OfflineIterations: 20}, cfg.Crypto)
				assert.Equal(t, Offline{Enabled: true, Forced: true}, cfg.Offline)
				assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestNetAddress_SetAndString checks that parsed addresses print back
// unchanged.
func TestNetAddress_SetAndString(t *testing.T) {
	for _, input := range []string{"localhost:8080", "127.0.0.1:9090", "[::1]:8443"} {
		var addr NetAddress
		require.NoError(t, addr.Set(input))
		assert.Equal(t, input, addr.String())
	}
}
