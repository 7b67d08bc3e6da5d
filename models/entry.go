// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordStrength is the ordinal strength classification attached to every
// entry. WEAK is the lowest value, so "at most WEAK" is a simple comparison.
type PasswordStrength int

const (
	PasswordStrengthWeak PasswordStrength = iota + 1
	PasswordStrengthMedium
	PasswordStrengthStrong
)

// String returns the upper-case label used in logs and CLI output.
func (s PasswordStrength) String() string {
	switch s {
	case PasswordStrengthWeak:
		return "WEAK"
	case PasswordStrengthMedium:
		return "MEDIUM"
	case PasswordStrengthStrong:
		return "STRONG"
	default:
		return "UNKNOWN"
	}
}

// Entry is a credential record exactly as it is stored in the vault database
// and therefore exactly as it is serialized, encrypted and fingerprinted.
//
// URL holds the composite item locator (URL and secure note packed into one
// string); use vaultdb.ParseLocator to read it.
type Entry struct {
	// ID is assigned by the store at creation and never changes.
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Login    string `json:"login"`
	Password string `json:"password"`

	// Created and Updated are RFC 1123 GMT timestamps (http.TimeFormat).
	Created string `json:"created"`
	Updated string `json:"updated"`

	UsageCount int `json:"usage_count"`

	// ReuseCount is the number of other entries sharing the same password.
	ReuseCount int              `json:"reuse_count"`
	Strength   PasswordStrength `json:"password_strength_indication"`
	Hidden     bool             `json:"hidden"`
}

// EntryAttrs are the user-controlled attributes of a new record.
type EntryAttrs struct {
	Title    string
	URL      string
	Login    string
	Password string
	Hidden   bool
}

// EntryPatch describes a partial update. Nil fields are left untouched.
type EntryPatch struct {
	Title    *string
	URL      *string
	Login    *string
	Password *string
	Hidden   *bool
}

// VaultEntry is the caller-facing view of an [Entry] with the composite
// locator decoded into ItemURL and SecureNote.
type VaultEntry struct {
	ID         string
	Title      string
	ItemURL    string
	SecureNote string
	Login      string
	Password   string
	Created    string
	Updated    string
	UsageCount int
	ReuseCount int
	Strength   PasswordStrength
	Hidden     bool
}

// VaultEntryAttrs are the attributes accepted by Vault.AddEntry.
type VaultEntryAttrs struct {
	Title      string
	ItemURL    string
	SecureNote string
	Login      string
	Password   string
	Hidden     bool
}

// VaultEntryPatch is the partial update accepted by Vault.UpdateEntry.
// ItemURL and SecureNote are re-encoded together, so patching one keeps the
// stored value of the other.
type VaultEntryPatch struct {
	Title      *string
	ItemURL    *string
	SecureNote *string
	Login      *string
	Password   *string
	Hidden     *bool
}
