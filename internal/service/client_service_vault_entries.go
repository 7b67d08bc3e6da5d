package service

import (
	"github.com/MKhiriev/go-vaultage/internal/vaultdb"
	"github.com/MKhiriev/go-vaultage/models"
)

// AddEntry stores a new entry and returns its id. The change is local until
// the next [Vault.Save].
func (v *Vault) AddEntry(attrs models.VaultEntryAttrs) (string, error) {
	if err := v.ensureOnline(); err != nil {
		return "", err
	}

	return v.db.Add(models.EntryAttrs{
		Title:    attrs.Title,
		URL:      vaultdb.EncodeLocator(attrs.ItemURL, attrs.SecureNote),
		Login:    attrs.Login,
		Password: attrs.Password,
		Hidden:   attrs.Hidden,
	}), nil
}

// UpdateEntry applies patch to the entry. Patching only one of ItemURL and
// SecureNote keeps the stored value of the other.
func (v *Vault) UpdateEntry(id string, patch models.VaultEntryPatch) (models.VaultEntry, error) {
	if err := v.ensureOnline(); err != nil {
		return models.VaultEntry{}, err
	}

	dbPatch := models.EntryPatch{
		Title:    patch.Title,
		Login:    patch.Login,
		Password: patch.Password,
		Hidden:   patch.Hidden,
	}

	if patch.ItemURL != nil || patch.SecureNote != nil {
		current, err := v.db.Get(id)
		if err != nil {
			return models.VaultEntry{}, err
		}

		loc := vaultdb.ParseLocator(current.URL)
		if patch.ItemURL != nil {
			loc.URL = *patch.ItemURL
		}
		if patch.SecureNote != nil {
			loc.SecureNote = *patch.SecureNote
		}
		encoded := loc.Encode()
		dbPatch.URL = &encoded
	}

	e, err := v.db.Update(id, dbPatch)
	if err != nil {
		return models.VaultEntry{}, err
	}
	return toVaultEntry(e), nil
}

func (v *Vault) RemoveEntry(id string) error {
	if err := v.ensureOnline(); err != nil {
		return err
	}
	return v.db.Remove(id)
}

// ReplaceAllEntries substitutes the whole database with entries, used by
// imports. Records are kept as given, locator included.
func (v *Vault) ReplaceAllEntries(entries []models.Entry) error {
	if err := v.ensureOnline(); err != nil {
		return err
	}
	return v.db.ReplaceAll(entries)
}

// EntryUsed bumps the usage counter of the entry. Allowed offline.
func (v *Vault) EntryUsed(id string) (int, error) {
	return v.db.EntryUsed(id)
}

// Entry returns a single entry.
func (v *Vault) Entry(id string) (models.VaultEntry, error) {
	e, err := v.db.Get(id)
	if err != nil {
		return models.VaultEntry{}, err
	}
	return toVaultEntry(e), nil
}

func (v *Vault) AllEntries() []models.VaultEntry {
	return toVaultEntries(v.db.All())
}

// FindEntries returns the entries matching every term, best match first.
func (v *Vault) FindEntries(query ...string) []models.VaultEntry {
	return toVaultEntries(v.db.Find(query...))
}

// WeakPasswords returns the entries rated at most threshold. A zero
// threshold means WEAK.
func (v *Vault) WeakPasswords(threshold models.PasswordStrength) []models.VaultEntry {
	if threshold == 0 {
		threshold = models.PasswordStrengthWeak
	}
	return toVaultEntries(v.db.WeakPasswords(threshold))
}

func (v *Vault) EntriesWhichReusePasswords() []models.VaultEntry {
	return toVaultEntries(v.db.EntriesWhichReusePasswords())
}

// NbEntries returns the number of entries.
func (v *Vault) NbEntries() int {
	return v.db.Size()
}

func toVaultEntry(e models.Entry) models.VaultEntry {
	loc := vaultdb.ParseLocator(e.URL)
	return models.VaultEntry{
		ID:         e.ID,
		Title:      e.Title,
		ItemURL:    loc.URL,
		SecureNote: loc.SecureNote,
		Login:      e.Login,
		Password:   e.Password,
		Created:    e.Created,
		Updated:    e.Updated,
		UsageCount: e.UsageCount,
		ReuseCount: e.ReuseCount,
		Strength:   e.Strength,
		Hidden:     e.Hidden,
	}
}

func toVaultEntries(entries []models.Entry) []models.VaultEntry {
	out := make([]models.VaultEntry, len(entries))
	for i, e := range entries {
		out[i] = toVaultEntry(e)
	}
	return out
}
