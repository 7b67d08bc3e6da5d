// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vaultage/models"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	selector *Selector
	salts    models.Salts

	// iterations drives the local key, the remote key and the fingerprint;
	// offlineIterations drives the offline key. Both are fields so tests and
	// low-end devices can lower them.
	iterations        int
	offlineIterations int

	// template holds the caller-chosen cipher parameters; salt and IV are
	// never taken from it.
	template Params
}

// Option customizes a [KeyChainService].
type Option func(*keyChainService)

// WithSelector replaces the default native-then-portable backend order.
func WithSelector(s *Selector) Option {
	return func(k *keyChainService) {
		k.selector = s
	}
}

// WithIterations sets the iteration count of local, remote and fingerprint
// derivations. Non-positive values keep the default.
func WithIterations(n int) Option {
	return func(k *keyChainService) {
		if n > 0 {
			k.iterations = n
		}
	}
}

// WithOfflineIterations sets the iteration count of the offline key.
// Non-positive values keep the default.
func WithOfflineIterations(n int) Option {
	return func(k *keyChainService) {
		if n > 0 {
			k.offlineIterations = n
		}
	}
}

// WithCipherParams sets the mode, key size, tag size, iteration count and
// AAD used by Encrypt. Salt, IV and ciphertext in p are ignored.
func WithCipherParams(p Params) Option {
	return func(k *keyChainService) {
		t := p.clone()
		t.Salt, t.IV, t.CT = nil, nil, nil
		k.template = t
	}
}

// NewKeyChainService constructs a [KeyChainService] bound to the server's
// salts. By default it uses [DefaultBackends], [PBKDF2Difficulty] and
// [OfflinePBKDF2Difficulty].
func NewKeyChainService(salts models.Salts, opts ...Option) KeyChainService {
	k := &keyChainService{
		salts:             salts,
		iterations:        PBKDF2Difficulty,
		offlineIterations: OfflinePBKDF2Difficulty,
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.selector == nil {
		k.selector = NewSelector(DefaultBackends()...)
	}
	return k
}

// DeriveLocalKey implements [KeyChainService].
func (k *keyChainService) DeriveLocalKey(masterPassword string) (string, error) {
	return k.selector.DeriveKey(masterPassword, k.salts.LocalKeySalt, k.iterations, true)
}

// DeriveRemoteKey implements [KeyChainService].
func (k *keyChainService) DeriveRemoteKey(masterPassword string) (string, error) {
	return k.selector.DeriveKey(masterPassword, k.salts.RemoteKeySalt, k.iterations, true)
}

// DeriveOfflineKey implements [KeyChainService].
func (k *keyChainService) DeriveOfflineKey(masterPassword, offlineSalt string) (string, error) {
	return k.selector.DeriveKey(masterPassword, offlineSalt, k.offlineIterations, true)
}

// Encrypt implements [KeyChainService]. Every call draws a fresh salt and IV.
func (k *keyChainService) Encrypt(key, plaintext string) (string, error) {
	req := k.template.clone()

	used, err := k.selector.Encrypt(plaintext, key, &req)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return used.Encode()
}

// Decrypt implements [KeyChainService].
func (k *keyChainService) Decrypt(key, cipherText string) (string, error) {
	p, err := ParseParams(cipherText)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}

	plain, err := k.selector.Decrypt(key, p)
	if err != nil {
		if errors.Is(err, ErrDecryptionFailure) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}
	return plain, nil
}

// Fingerprint implements [KeyChainService]. The local key acts as the salt
// and the plaintext is not pre-hashed.
func (k *keyChainService) Fingerprint(plaintext, localKey string) (string, error) {
	return k.selector.DeriveKey(plaintext, localKey, k.iterations, false)
}
