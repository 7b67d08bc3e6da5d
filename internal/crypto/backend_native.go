// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/pbkdf2"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/sys/cpu"
)

// nativeBackend is the accelerated backend: the standard library's PBKDF2
// and AES-GCM, used only when the CPU has AES instructions. It implements
// GCM with full 128-bit tags and nothing else.
type nativeBackend struct {
	// hardwareAES is the CPU capability check, computed once at
	// construction.
	hardwareAES bool
}

// NewNativeBackend checks the CPU and returns the accelerated backend. On
// hardware without AES instructions every Can* method reports false and the
// selector falls through to the portable backend.
func NewNativeBackend() Backend {
	return &nativeBackend{hardwareAES: hasAESInstructions()}
}

func hasAESInstructions() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}

// Name implements [Backend].
func (n *nativeBackend) Name() string {
	return "native"
}

// CanDerive implements [Backend].
func (n *nativeBackend) CanDerive() bool {
	return n.hardwareAES
}

// CanEncrypt implements [Backend]. Unset fields take the defaults, which
// the backend supports.
func (n *nativeBackend) CanEncrypt(p *Params) bool {
	if !n.hardwareAES {
		return false
	}
	if p == nil {
		return true
	}
	return n.supports(normalizedMode(p.Mode), orDefault(p.KS, DefaultKeySize),
		orDefault(p.TS, DefaultTagSize), len(p.IV) == 0 || len(p.IV) >= minIVSize, p.Cipher)
}

// CanDecrypt implements [Backend].
func (n *nativeBackend) CanDecrypt(p Params) bool {
	if !n.hardwareAES {
		return false
	}
	return n.supports(normalizedMode(p.Mode), p.KS, p.TS, len(p.IV) >= minIVSize, p.Cipher)
}

func (n *nativeBackend) supports(mode string, ks, ts int, ivOK bool, cipherName string) bool {
	return mode == ModeGCM && ts == 128 && validKeySize(ks) && ivOK && validCipher(cipherName)
}

// DeriveKey implements [Backend].
func (n *nativeBackend) DeriveKey(secret, salt string, iterations int, prehash bool) (string, error) {
	if err := checkIterations(iterations); err != nil {
		return "", err
	}

	key, err := pbkdf2.Key(sha256.New, string(kdfPassword(secret, prehash)), []byte(salt), iterations, derivedKeySize)
	if err != nil {
		return "", fmt.Errorf("native pbkdf2: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Encrypt implements [Backend].
func (n *nativeBackend) Encrypt(plaintext, key string, p *Params) (Params, error) {
	if !n.CanEncrypt(p) {
		return Params{}, fmt.Errorf("%w: native backend cannot encrypt with these parameters", ErrBackendUnavailable)
	}

	used, err := withDefaults(p)
	if err != nil {
		return Params{}, err
	}

	aead, err := n.aead(key, used)
	if err != nil {
		return Params{}, err
	}

	used.CT = aead.Seal(nil, used.IV, []byte(plaintext), used.AData)
	return used, nil
}

// Decrypt implements [Backend].
func (n *nativeBackend) Decrypt(key string, p Params) (string, error) {
	if err := p.validateForDecrypt(); err != nil {
		return "", err
	}
	if !n.CanDecrypt(p) {
		return "", fmt.Errorf("%w: native backend cannot decrypt with these parameters", ErrBackendUnavailable)
	}

	aead, err := n.aead(key, p)
	if err != nil {
		return "", err
	}

	plain, err := aead.Open(nil, p.IV, p.CT, p.AData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}
	return string(plain), nil
}

func (n *nativeBackend) aead(key string, p Params) (cipher.AEAD, error) {
	k, err := pbkdf2.Key(sha256.New, key, p.Salt, p.Iter, p.KS/8)
	if err != nil {
		return nil, fmt.Errorf("native pbkdf2: %w", err)
	}

	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, fmt.Errorf("native aes: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, len(p.IV))
	if err != nil {
		return nil, fmt.Errorf("native gcm: %w", err)
	}
	return aead, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
