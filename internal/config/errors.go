package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [ServerConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or username).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, offline mode without a DSN, or an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a server without key salts).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates negative iteration counts.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid server listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// errInvalidNetAddress is returned by [NetAddress.Set] for anything that is
// not host:port with an IP or localhost host.
var errInvalidNetAddress = errors.New("need address in a form `host:port`")
