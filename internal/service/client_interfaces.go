package service

import (
	"context"
	"time"
)

// ClientAuthService opens vaults.
type ClientAuthService interface {
	// Login fetches the server configuration (from the cache when known),
	// derives the keys of masterPassword and pulls the vault of username.
	//
	// When the offline provider reports the client as running offline, the
	// server is not contacted: the vault is opened from the local snapshot
	// and every operation that needs the server fails with
	// [ErrOfflineModeViolation].
	Login(ctx context.Context, serverURL, username, masterPassword string) (*Vault, error)
}

// Puller is what the background sync job refreshes. [*Vault] satisfies it;
// long-running clients pass a wrapper that serializes access to the vault.
type Puller interface {
	Pull(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background worker that
// periodically pulls the vault from the server.
type ClientSyncJob interface {
	// Start launches the background goroutine. It pulls every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
