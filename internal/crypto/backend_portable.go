// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/pion/dtls/v2/pkg/crypto/ccm"
	"golang.org/x/crypto/pbkdf2"
)

// portableBackend is the software backend. It has no hardware requirement
// and accepts the full SJCL parameter space except OCB2: GCM and CCM with
// 64, 96 or 128-bit tags.
type portableBackend struct{}

// NewPortableBackend returns the software backend.
func NewPortableBackend() Backend {
	return &portableBackend{}
}

// Name implements [Backend].
func (b *portableBackend) Name() string {
	return "portable"
}

// CanDerive implements [Backend].
func (b *portableBackend) CanDerive() bool {
	return true
}

// CanEncrypt implements [Backend].
func (b *portableBackend) CanEncrypt(p *Params) bool {
	if p == nil {
		return true
	}
	return b.supports(normalizedMode(p.Mode), orDefault(p.KS, DefaultKeySize),
		orDefault(p.TS, DefaultTagSize), len(p.IV) == 0 || len(p.IV) >= minIVSize, p.Cipher)
}

// CanDecrypt implements [Backend].
func (b *portableBackend) CanDecrypt(p Params) bool {
	return b.supports(normalizedMode(p.Mode), p.KS, p.TS, len(p.IV) >= minIVSize, p.Cipher)
}

func (b *portableBackend) supports(mode string, ks, ts int, ivOK bool, cipherName string) bool {
	if mode != ModeGCM && mode != ModeCCM {
		return false
	}
	return validKeySize(ks) && validTagSize(ts) && ivOK && validCipher(cipherName)
}

// DeriveKey implements [Backend].
func (b *portableBackend) DeriveKey(secret, salt string, iterations int, prehash bool) (string, error) {
	if err := checkIterations(iterations); err != nil {
		return "", err
	}

	key := pbkdf2.Key(kdfPassword(secret, prehash), []byte(salt), iterations, derivedKeySize, sha256.New)
	return hex.EncodeToString(key), nil
}

// Encrypt implements [Backend].
func (b *portableBackend) Encrypt(plaintext, key string, p *Params) (Params, error) {
	if !b.CanEncrypt(p) {
		return Params{}, fmt.Errorf("%w: portable backend cannot encrypt with these parameters", ErrBackendUnavailable)
	}

	used, err := withDefaults(p)
	if err != nil {
		return Params{}, err
	}
	used.Mode = normalizedMode(used.Mode)

	block, err := b.block(key, used)
	if err != nil {
		return Params{}, err
	}

	pt := []byte(plaintext)
	tagLen := used.TS / 8

	switch used.Mode {
	case ModeGCM:
		used.CT, err = gcmSeal(block, used.IV, pt, used.AData, tagLen)
	case ModeCCM:
		used.CT, err = ccmSeal(block, used.IV, pt, used.AData, tagLen)
	}
	if err != nil {
		return Params{}, err
	}
	return used, nil
}

// Decrypt implements [Backend].
func (b *portableBackend) Decrypt(key string, p Params) (string, error) {
	if err := p.validateForDecrypt(); err != nil {
		return "", err
	}
	if !b.CanDecrypt(p) {
		return "", fmt.Errorf("%w: portable backend cannot decrypt with these parameters", ErrBackendUnavailable)
	}

	block, err := b.block(key, p)
	if err != nil {
		return "", err
	}

	tagLen := p.TS / 8
	var plain []byte

	switch normalizedMode(p.Mode) {
	case ModeGCM:
		plain, err = gcmOpen(block, p.IV, p.CT, p.AData, tagLen)
	case ModeCCM:
		plain, err = ccmOpen(block, p.IV, p.CT, p.AData, tagLen)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}
	return string(plain), nil
}

func (b *portableBackend) block(key string, p Params) (cipher.Block, error) {
	k := pbkdf2.Key([]byte(key), p.Salt, p.Iter, p.KS/8, sha256.New)
	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, fmt.Errorf("portable aes: %w", err)
	}
	return block, nil
}

var errAuthentication = errors.New("message authentication failed")

// gcmSeal produces ciphertext || tag with the tag truncated to tagLen bytes.
// GCM tags are prefixes of the full 16-byte tag, so truncation is exact.
func gcmSeal(block cipher.Block, iv, plaintext, aad []byte, tagLen int) ([]byte, error) {
	aead, err := cipher.NewGCMWithNonceSize(block, len(iv))
	if err != nil {
		return nil, fmt.Errorf("portable gcm: %w", err)
	}

	full := aead.Seal(nil, iv, plaintext, aad)
	return full[:len(plaintext)+tagLen], nil
}

// gcmOpen verifies a possibly truncated GCM tag. The counter-mode keystream
// is recovered by sealing zeros, the plaintext re-sealed, and the expected
// tag prefix compared in constant time before anything is returned.
func gcmOpen(block cipher.Block, iv, ciphertext, aad []byte, tagLen int) ([]byte, error) {
	if len(ciphertext) < tagLen {
		return nil, errAuthentication
	}

	aead, err := cipher.NewGCMWithNonceSize(block, len(iv))
	if err != nil {
		return nil, fmt.Errorf("portable gcm: %w", err)
	}

	body := ciphertext[:len(ciphertext)-tagLen]
	tag := ciphertext[len(ciphertext)-tagLen:]

	keystream := aead.Seal(nil, iv, make([]byte, len(body)), nil)[:len(body)]
	plain := make([]byte, len(body))
	subtle.XORBytes(plain, body, keystream)

	expected := aead.Seal(nil, iv, plain, aad)
	if subtle.ConstantTimeCompare(expected[len(body):len(body)+tagLen], tag) != 1 {
		return nil, errAuthentication
	}
	return plain, nil
}

// ccmNonce applies the SJCL rule: the length field L is the smallest of
// 2..4 bytes that fits the message, raised to 15-len(iv) for short IVs, and
// the nonce is the first 15-L bytes of the IV.
func ccmNonce(iv []byte, msgLen int) []byte {
	l := 2
	for l < 4 && msgLen>>(8*l) != 0 {
		l++
	}
	if l < 15-len(iv) {
		l = 15 - len(iv)
	}
	return iv[:15-l]
}

func ccmSeal(block cipher.Block, iv, plaintext, aad []byte, tagLen int) ([]byte, error) {
	nonce := ccmNonce(iv, len(plaintext))
	aead, err := ccm.NewCCM(block, tagLen, len(nonce))
	if err != nil {
		return nil, fmt.Errorf("portable ccm: %w", err)
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

func ccmOpen(block cipher.Block, iv, ciphertext, aad []byte, tagLen int) ([]byte, error) {
	if len(ciphertext) < tagLen {
		return nil, errAuthentication
	}

	nonce := ccmNonce(iv, len(ciphertext)-tagLen)
	aead, err := ccm.NewCCM(block, tagLen, len(nonce))
	if err != nil {
		return nil, fmt.Errorf("portable ccm: %w", err)
	}

	plain, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, errAuthentication
	}
	return plain, nil
}
