package service

import (
	"fmt"

	"github.com/awnumar/memguard"
)

// OfflineURL is the server URL of a vault opened from the offline copy.
const OfflineURL = "offline://"

// Credentials are the keys a vault is opened with.
type Credentials struct {
	ServerURL string
	Username  string
	LocalKey  string
	RemoteKey string
	// OfflineKey is empty when offline mode is disabled.
	OfflineKey string
}

// sealedCredentials keeps the keys in memguard enclaves. A value is never
// modified: a password change builds a new one and destroys the old.
type sealedCredentials struct {
	serverURL string
	username  string

	localKey   *memguard.Enclave
	remoteKey  *memguard.Enclave
	offlineKey *memguard.Enclave
}

func sealCredentials(c Credentials) *sealedCredentials {
	s := &sealedCredentials{
		serverURL: c.ServerURL,
		username:  c.Username,
		localKey:  sealKey(c.LocalKey),
		remoteKey: sealKey(c.RemoteKey),
	}
	if c.OfflineKey != "" {
		s.offlineKey = sealKey(c.OfflineKey)
	}
	return s
}

// sealKey returns nil for an empty key: memguard refuses empty enclaves.
func sealKey(key string) *memguard.Enclave {
	if key == "" {
		return nil
	}
	return memguard.NewEnclave([]byte(key))
}

// openKey decrypts e into a locked buffer, copies the key out as a string
// and destroys the buffer. The key chain, the transport and resty all take
// keys as strings, so a plaintext copy lives on the Go heap for the length
// of one operation and is never wiped: the garbage collector may move it
// and strings are immutable. The enclaves only guarantee that keys are not
// kept in plaintext between operations.
func openKey(e *memguard.Enclave) (string, error) {
	if e == nil {
		return "", nil
	}

	buf, err := e.Open()
	if err != nil {
		return "", fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	return string(buf.Bytes()), nil
}

func (s *sealedCredentials) LocalKey() (string, error)   { return openKey(s.localKey) }
func (s *sealedCredentials) RemoteKey() (string, error)  { return openKey(s.remoteKey) }
func (s *sealedCredentials) OfflineKey() (string, error) { return openKey(s.offlineKey) }

func (s *sealedCredentials) offlineEnabled() bool {
	return s.offlineKey != nil
}

// destroy drops the references to the enclaves; memguard wipes their
// ciphertext when they are collected.
func (s *sealedCredentials) destroy() {
	s.localKey, s.remoteKey, s.offlineKey = nil, nil, nil
}
