package client

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-vaultage/internal/service"
)

// session serializes access to a vault shared between the command and the
// background sync job.
type session struct {
	mu    sync.Mutex
	vault *service.Vault
}

func (s *session) Pull(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vault.Pull(ctx)
}

// do runs fn with exclusive access to the vault.
func (s *session) do(fn func(v *service.Vault) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.vault)
}
