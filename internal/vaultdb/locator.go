// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vaultdb

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
)

// LocatorFormat tells which encoding a stored locator string used.
type LocatorFormat int

const (
	// LocatorPlain is a bare URL without secure note.
	LocatorPlain LocatorFormat = iota

	// LocatorCurrent is {"url": ..., "secureNote": base64(note)}.
	LocatorCurrent

	// LocatorLegacy is the current form written with "|||" in place of
	// every comma.
	LocatorLegacy
)

const legacySeparator = "|||"

// Locator is the decoded form of the entry url field: the item URL and the
// secure note stored alongside it.
type Locator struct {
	URL        string
	SecureNote string
	Format     LocatorFormat
}

type locatorJSON struct {
	URL        *string `json:"url"`
	SecureNote string  `json:"secureNote"`
}

// ParseLocator decodes a stored locator. It never fails: anything that is
// not a well-formed current or legacy record is returned as a plain URL with
// an empty note.
func ParseLocator(raw string) Locator {
	if l, ok := decodeLocator(raw); ok {
		l.Format = LocatorCurrent
		return l
	}

	if strings.Contains(raw, legacySeparator) {
		if l, ok := decodeLocator(strings.ReplaceAll(raw, legacySeparator, ",")); ok {
			l.Format = LocatorLegacy
			return l
		}
	}

	return Locator{URL: raw, Format: LocatorPlain}
}

func decodeLocator(s string) (Locator, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return Locator{}, false
	}

	var v locatorJSON
	if err := json.Unmarshal([]byte(s), &v); err != nil || v.URL == nil {
		return Locator{}, false
	}

	note, err := base64.StdEncoding.DecodeString(v.SecureNote)
	if err != nil {
		return Locator{}, false
	}

	return Locator{URL: *v.URL, SecureNote: string(note)}, true
}

// EncodeLocator returns the current form of url and note.
func EncodeLocator(url, note string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// encoding a struct of two strings cannot fail
	_ = enc.Encode(locatorJSON{URL: &url, SecureNote: base64.StdEncoding.EncodeToString([]byte(note))})

	return strings.TrimSuffix(buf.String(), "\n")
}

// Encode returns the current form of l, whatever format it was parsed from.
func (l Locator) Encode() string {
	return EncodeLocator(l.URL, l.SecureNote)
}
