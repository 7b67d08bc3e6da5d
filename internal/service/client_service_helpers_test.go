package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-vaultage/internal/adapter"
	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/crypto"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/store"
	"github.com/MKhiriev/go-vaultage/models"
	"github.com/stretchr/testify/require"
)

const (
	testServerURL = "http://vault.test"
	testUsername  = "john"
	testPassword  = "correct horse battery staple"
)

var testSalts = models.Salts{LocalKeySalt: "deadbeef", RemoteKeySalt: "0123456789"}

// newTestKeyChain: дешёвые параметры KDF, чтобы тесты не тормозили.
func newTestKeyChain(salts models.Salts) crypto.KeyChainService {
	return crypto.NewKeyChainService(salts,
		crypto.WithIterations(1),
		crypto.WithOfflineIterations(1),
		crypto.WithCipherParams(crypto.Params{Iter: 1}),
	)
}

func testCredentials(t *testing.T, keyChain crypto.KeyChainService, password string) Credentials {
	t.Helper()
	creds, err := deriveCredentials(context.Background(), keyChain, store.NoOpOfflineProvider{}, password,
		Credentials{ServerURL: testServerURL, Username: testUsername}, false)
	require.NoError(t, err)
	return creds
}

// ── loopback transport ───────────────────────────────────────────────────────

// loopbackTransport talks to a VaultService in-process and translates its
// errors the way the HTTP handler and adapter do on the wire.
type loopbackTransport struct {
	svc VaultService

	mu     sync.Mutex
	pushes []models.UpdateCipherRequest
}

func newLoopback(demo bool) (*loopbackTransport, VaultService) {
	app := config.App{Demo: demo, LocalKeySalt: testSalts.LocalKeySalt, RemoteKeySalt: testSalts.RemoteKeySalt}
	svc := NewVaultValidationService().Wrap(NewVaultService(store.NewMemoryVaultRepository(logger.Nop()), app, logger.Nop()))
	return &loopbackTransport{svc: svc}, svc
}

func (l *loopbackTransport) PullConfig(ctx context.Context, serverURL string) (models.ServerConfig, error) {
	return l.svc.Config(ctx), nil
}

func (l *loopbackTransport) PullCipher(ctx context.Context, serverURL, username, remoteKey string) (string, error) {
	cipher, err := l.svc.Pull(ctx, models.VaultRef{Username: username, RemoteKey: remoteKey})
	return cipher, toWireError(err)
}

func (l *loopbackTransport) PushCipher(ctx context.Context, serverURL, username, remoteKey string, req models.UpdateCipherRequest) error {
	l.mu.Lock()
	l.pushes = append(l.pushes, req)
	l.mu.Unlock()

	return toWireError(l.svc.Push(ctx, models.VaultRef{Username: username, RemoteKey: remoteKey}, req))
}

func (l *loopbackTransport) pushCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pushes)
}

func toWireError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStaleWrite):
		return adapter.ErrNotFastForward
	case errors.Is(err, ErrBadCredentials):
		return adapter.ErrAuthentication
	case errors.Is(err, ErrDemoModeRejected):
		return adapter.ErrDemoMode
	default:
		return adapter.ErrUnknownServerError
	}
}

// ── memory offline provider ──────────────────────────────────────────────────

type memoryOffline struct {
	mu      sync.Mutex
	running bool
	salt    string
	cipher  string
	saves   int
	saveErr error
}

func (m *memoryOffline) IsRunningOffline(context.Context) (bool, error) {
	return m.running, nil
}

func (m *memoryOffline) OfflineCipher(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cipher == "" {
		return "", store.ErrOfflineCipherNotFound
	}
	return m.cipher, nil
}

func (m *memoryOffline) OfflineSalt(context.Context) (string, error) {
	return m.salt, nil
}

func (m *memoryOffline) SaveOfflineCipher(_ context.Context, cipher string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.cipher = cipher
	m.saves++
	return nil
}

func (m *memoryOffline) snapshot() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cipher, m.saves
}
