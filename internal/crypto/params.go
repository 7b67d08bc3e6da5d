// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Supported AES modes. OCB2 is recognized only to be rejected: the mode is
// broken and no backend implements it.
const (
	ModeGCM  = "gcm"
	ModeCCM  = "ccm"
	ModeOCB2 = "ocb2"
)

// CipherAES is the only block cipher of the format.
const CipherAES = "aes"

// Defaults applied by Encrypt to every field the caller leaves empty.
const (
	FormatVersion     = 1
	DefaultIterations = 10000
	DefaultKeySize    = 256
	DefaultTagSize    = 128
	DefaultMode       = ModeGCM

	saltSize  = 8
	ivSize    = 16
	minIVSize = 12
)

// Bytes is a byte slice encoded as standard base64 in JSON. Decoding accepts
// input without "=" padding because the transport strips it.
type Bytes []byte

// MarshalJSON implements json.Marshaler.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	decoded, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return fmt.Errorf("decode base64 field: %w", err)
	}

	*b = decoded
	return nil
}

// Params is the self-describing record of one authenticated encryption. Its
// JSON form is the SJCL format, so ciphers written by older clients decrypt
// unchanged.
//
// Zero values mean "not set": Encrypt fills them, Decrypt rejects the ones it
// needs.
type Params struct {
	IV     Bytes  `json:"iv"`
	V      int    `json:"v"`
	Iter   int    `json:"iter"`
	KS     int    `json:"ks"`
	TS     int    `json:"ts"`
	Mode   string `json:"mode"`
	AData  Bytes  `json:"adata"`
	Cipher string `json:"cipher"`
	Salt   Bytes  `json:"salt"`
	CT     Bytes  `json:"ct"`
}

// ParseParams decodes an SJCL JSON record.
func ParseParams(s string) (Params, error) {
	var p Params
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return Params{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return p, nil
}

// Encode returns the SJCL JSON form of p.
func (p Params) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode cipher params: %w", err)
	}
	return string(b), nil
}

// withDefaults returns a copy of p (nil means empty) with every unset field
// filled. Salt and IV are drawn from crypto/rand on every call.
func withDefaults(p *Params) (Params, error) {
	var out Params
	if p != nil {
		out = p.clone()
	}

	if out.V == 0 {
		out.V = FormatVersion
	}
	if out.Cipher == "" {
		out.Cipher = CipherAES
	}
	if out.Mode == "" {
		out.Mode = DefaultMode
	}
	if out.KS == 0 {
		out.KS = DefaultKeySize
	}
	if out.TS == 0 {
		out.TS = DefaultTagSize
	}
	if out.Iter == 0 {
		out.Iter = DefaultIterations
	}
	if out.AData == nil {
		out.AData = Bytes{}
	}

	if len(out.Salt) == 0 {
		salt, err := randomBytes(saltSize)
		if err != nil {
			return Params{}, err
		}
		out.Salt = salt
	}
	if len(out.IV) == 0 {
		iv, err := randomBytes(ivSize)
		if err != nil {
			return Params{}, err
		}
		out.IV = iv
	}

	out.CT = nil
	return out, nil
}

// validateForDecrypt checks that every field needed to decrypt is present.
func (p Params) validateForDecrypt() error {
	switch {
	case p.Mode == "":
		return ErrMissingMode
	case p.KS == 0:
		return ErrMissingKeySize
	case p.TS == 0:
		return ErrMissingTagSize
	case len(p.IV) == 0:
		return ErrMissingIV
	case len(p.Salt) == 0:
		return ErrMissingSalt
	case p.Iter == 0:
		return ErrMissingIterations
	case len(p.CT) == 0:
		return ErrMissingCiphertext
	}
	return nil
}

// verifyRoundTrip checks that a backend kept every field the caller asked for.
func verifyRoundTrip(requested *Params, used Params) error {
	if requested == nil {
		return nil
	}

	mismatch := func(field string) error {
		return fmt.Errorf("%w: %s", ErrParamsMismatch, field)
	}

	switch {
	case requested.V != 0 && requested.V != used.V:
		return mismatch("v")
	case requested.Iter != 0 && requested.Iter != used.Iter:
		return mismatch("iter")
	case requested.KS != 0 && requested.KS != used.KS:
		return mismatch("ks")
	case requested.TS != 0 && requested.TS != used.TS:
		return mismatch("ts")
	case requested.Mode != "" && !strings.EqualFold(requested.Mode, used.Mode):
		return mismatch("mode")
	case requested.Cipher != "" && !strings.EqualFold(requested.Cipher, used.Cipher):
		return mismatch("cipher")
	case len(requested.IV) != 0 && !bytes.Equal(requested.IV, used.IV):
		return mismatch("iv")
	case len(requested.Salt) != 0 && !bytes.Equal(requested.Salt, used.Salt):
		return mismatch("salt")
	case !bytes.Equal(requested.AData, used.AData):
		return mismatch("adata")
	}
	return nil
}

func (p Params) clone() Params {
	out := p
	out.IV = cloneBytes(p.IV)
	out.AData = cloneBytes(p.AData)
	out.Salt = cloneBytes(p.Salt)
	out.CT = cloneBytes(p.CT)
	return out
}

func cloneBytes(b Bytes) Bytes {
	if b == nil {
		return nil
	}
	return append(Bytes{}, b...)
}

func randomBytes(n int) (Bytes, error) {
	b := make(Bytes, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

func validKeySize(ks int) bool {
	return ks == 128 || ks == 192 || ks == 256
}

func validTagSize(ts int) bool {
	return ts == 64 || ts == 96 || ts == 128
}

func validCipher(c string) bool {
	return c == "" || strings.EqualFold(c, CipherAES)
}

func normalizedMode(mode string) string {
	if mode == "" {
		return DefaultMode
	}
	return strings.ToLower(mode)
}
