// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the vault client and
// a vaultage server.
//
// The primary abstraction is [VaultTransport], which decouples the service
// layer from the wire. The package ships an HTTP/JSON implementation
// ([NewHTTPVaultTransport]) built on resty.
//
// Server-side protocol errors (EFAST, EAUTH, EDEMO) and HTTP failures are
// mapped to the sentinel values in errors.go so that callers can use
// [errors.Is] without knowing the wire format.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vaultage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_transport_mock.go -package=mock

// VaultTransport moves ciphers between the client and the server. It never
// sees plaintext and never retries.
type VaultTransport interface {
	// PullConfig fetches the public configuration (salts, demo flag) of the
	// server at serverURL.
	PullConfig(ctx context.Context, serverURL string) (models.ServerConfig, error)

	// PullCipher fetches the current cipher of username, authenticating with
	// remoteKey. An empty string means the vault was never pushed.
	PullCipher(ctx context.Context, serverURL, username, remoteKey string) (string, error)

	// PushCipher replaces the stored cipher of username. The server rejects
	// the push with [ErrNotFastForward] when req.OldHash is stale.
	PushCipher(ctx context.Context, serverURL, username, remoteKey string, req models.UpdateCipherRequest) error
}
