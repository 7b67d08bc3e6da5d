package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-demo run the server in demo mode
//	-local-key-salt server local key salt
//	-remote-key-salt server remote key salt
//	-log-level log level
//	-s vault server URL
//	-u vault username
//	-adapter-timeout client request timeout
//	-basic-auth-user HTTP basic auth user
//	-basic-auth-password HTTP basic auth password
//	-iterations PBKDF2 iterations of the interactive keys
//	-offline-iterations PBKDF2 iterations of the offline key
//	-offline keep an encrypted offline copy
//	-force-offline open the vault from the offline copy
//	-sync-interval auto-pull interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var demo bool
	var localKeySalt, remoteKeySalt string
	var logLevel string
	var serverURL, username string
	var adapterTimeout time.Duration
	var basicAuthUser, basicAuthPassword string
	var iterations, offlineIterations int
	var offline, forceOffline bool
	var syncInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&demo, "demo", false, "Run the server in demo mode")
	flag.StringVar(&localKeySalt, "local-key-salt", "", "Local key salt")
	flag.StringVar(&remoteKeySalt, "remote-key-salt", "", "Remote key salt")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.StringVar(&serverURL, "s", "", "Vault server URL")
	flag.StringVar(&username, "u", "", "Vault username")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 30s)")
	flag.StringVar(&basicAuthUser, "basic-auth-user", "", "HTTP basic auth user")
	flag.StringVar(&basicAuthPassword, "basic-auth-password", "", "HTTP basic auth password")
	flag.IntVar(&iterations, "iterations", 0, "PBKDF2 iterations of the interactive keys")
	flag.IntVar(&offlineIterations, "offline-iterations", 0, "PBKDF2 iterations of the offline key")
	flag.BoolVar(&offline, "offline", false, "Keep an encrypted offline copy of the vault")
	flag.BoolVar(&forceOffline, "force-offline", false, "Open the vault from the offline copy")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Auto-pull interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			Demo:          demo,
			LocalKeySalt:  localKeySalt,
			RemoteKeySalt: remoteKeySalt,
		},
		Crypto: Crypto{
			Iterations:        iterations,
			OfflineIterations: offlineIterations,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Offline: Offline{
			Enabled: offline,
			Forced:  forceOffline,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ServerURL:         serverURL,
			Username:          username,
			RequestTimeout:    adapterTimeout,
			BasicAuthUser:     basicAuthUser,
			BasicAuthPassword: basicAuthPassword,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the address in host:port form, bracketing IPv6 hosts. An
// unset address renders as "" so that it does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP literal
// (IPv6 in brackets); the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1..65535", errInvalidNetAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", errInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
