// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vaultdb holds the decrypted credential database of a vault.
//
// A [DB] is a revisioned map of [models.Entry] keyed by id. It is the
// plaintext that gets serialized, encrypted and pushed: every field of every
// entry, the revision and the format version take part in the fingerprint.
//
// The store is not safe for concurrent use; the vault that owns it
// serializes access.
package vaultdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-vaultage/internal/passwords"
	"github.com/MKhiriev/go-vaultage/models"
)

// FormatVersion is the version written by Serialize.
const FormatVersion = 1

// DB is the revisioned credential store.
type DB struct {
	entries  map[string]models.Entry
	revision int

	// nextID is the next id handed out by Add. It only grows, so an id freed
	// by Remove is never reissued.
	nextID int

	classifier passwords.Classifier
	now        func() time.Time
}

// Option customizes a [DB].
type Option func(*DB)

// WithClock replaces time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		db.now = now
	}
}

// New returns an empty store. A nil classifier falls back to
// [passwords.NewClassifier].
func New(classifier passwords.Classifier, opts ...Option) *DB {
	if classifier == nil {
		classifier = passwords.NewClassifier()
	}

	db := &DB{
		entries:    make(map[string]models.Entry),
		classifier: classifier,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Add stores a new entry and returns its id.
func (db *DB) Add(attrs models.EntryAttrs) string {
	id := strconv.Itoa(db.nextID)
	db.nextID++

	ts := db.timestamp()
	db.entries[id] = models.Entry{
		ID:       id,
		Title:    attrs.Title,
		URL:      attrs.URL,
		Login:    attrs.Login,
		Password: attrs.Password,
		Created:  ts,
		Updated:  ts,
		Strength: db.classifier.Classify(attrs.Password),
		Hidden:   attrs.Hidden,
	}
	db.updateReuseCounts()

	return id
}

// Update applies patch to the entry and returns the updated entry.
func (db *DB) Update(id string, patch models.EntryPatch) (models.Entry, error) {
	e, ok := db.entries[id]
	if !ok {
		return models.Entry{}, fmt.Errorf("update %q: %w", id, ErrEntryNotFound)
	}

	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.URL != nil {
		e.URL = *patch.URL
	}
	if patch.Login != nil {
		e.Login = *patch.Login
	}
	if patch.Password != nil {
		e.Password = *patch.Password
		e.Strength = db.classifier.Classify(e.Password)
	}
	if patch.Hidden != nil {
		e.Hidden = *patch.Hidden
	}
	e.Updated = db.timestamp()

	db.entries[id] = e
	db.updateReuseCounts()

	return db.entries[id], nil
}

// Remove deletes the entry.
func (db *DB) Remove(id string) error {
	if _, ok := db.entries[id]; !ok {
		return fmt.Errorf("remove %q: %w", id, ErrEntryNotFound)
	}

	delete(db.entries, id)
	db.updateReuseCounts()
	return nil
}

// Get returns the entry with the given id.
func (db *DB) Get(id string) (models.Entry, error) {
	e, ok := db.entries[id]
	if !ok {
		return models.Entry{}, fmt.Errorf("get %q: %w", id, ErrEntryNotFound)
	}
	return e, nil
}

// EntryUsed increments the usage counter of the entry and returns the new
// value.
func (db *DB) EntryUsed(id string) (int, error) {
	e, ok := db.entries[id]
	if !ok {
		return 0, fmt.Errorf("entry used %q: %w", id, ErrEntryNotFound)
	}

	e.UsageCount++
	db.entries[id] = e
	return e.UsageCount, nil
}

// All returns every entry ordered by id.
func (db *DB) All() []models.Entry {
	out := make([]models.Entry, 0, len(db.entries))
	for _, e := range db.entries {
		out = append(out, e)
	}
	sortByID(out)
	return out
}

// Find returns the entries matching every query term. A term matches when
// it occurs, ignoring case, in the title, the login, the item URL or the
// secure note. Without terms every entry matches.
//
// Results come best match first: by the number of (term, field) hits, then
// by usage count, then by id.
func (db *DB) Find(query ...string) []models.Entry {
	type hit struct {
		entry models.Entry
		score int
	}

	terms := make([]string, 0, len(query))
	for _, q := range query {
		if q = strings.ToLower(q); q != "" {
			terms = append(terms, q)
		}
	}

	hits := make([]hit, 0, len(db.entries))
	for _, e := range db.entries {
		score, ok := matchScore(e, terms)
		if ok {
			hits = append(hits, hit{entry: e, score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		if hits[i].entry.UsageCount != hits[j].entry.UsageCount {
			return hits[i].entry.UsageCount > hits[j].entry.UsageCount
		}
		return idLess(hits[i].entry.ID, hits[j].entry.ID)
	})

	out := make([]models.Entry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}

func matchScore(e models.Entry, terms []string) (int, bool) {
	loc := ParseLocator(e.URL)
	fields := []string{
		strings.ToLower(e.Title),
		strings.ToLower(e.Login),
		strings.ToLower(loc.URL),
		strings.ToLower(loc.SecureNote),
	}

	score := 0
	for _, term := range terms {
		n := 0
		for _, f := range fields {
			if strings.Contains(f, term) {
				n++
			}
		}
		if n == 0 {
			return 0, false
		}
		score += n
	}
	return score, true
}

// EntriesWhichReusePasswords returns every entry whose password is shared
// with at least one other entry, grouped by password.
func (db *DB) EntriesWhichReusePasswords() []models.Entry {
	var out []models.Entry
	for _, e := range db.entries {
		if e.ReuseCount > 0 {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Password != out[j].Password {
			return out[i].Password < out[j].Password
		}
		return idLess(out[i].ID, out[j].ID)
	})
	return out
}

// WeakPasswords returns the entries whose strength is at most threshold,
// ordered by id.
func (db *DB) WeakPasswords(threshold models.PasswordStrength) []models.Entry {
	var out []models.Entry
	for _, e := range db.entries {
		if e.Strength <= threshold {
			out = append(out, e)
		}
	}
	sortByID(out)
	return out
}

// ReplaceAll substitutes the whole content of the store, keeping the
// records as given. The revision is bumped and future ids continue after
// the largest numeric id imported.
func (db *DB) ReplaceAll(entries []models.Entry) error {
	next := make(map[string]models.Entry, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return ErrEmptyEntryID
		}
		if _, dup := next[e.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateEntryID, e.ID)
		}
		next[e.ID] = e
	}

	db.entries = next
	db.advanceNextID()
	db.updateReuseCounts()
	db.revision++
	return nil
}

// NewRevision bumps the revision and returns the new value.
func (db *DB) NewRevision() int {
	db.revision++
	return db.revision
}

// Revision returns the current revision.
func (db *DB) Revision() int {
	return db.revision
}

// Size returns the number of entries.
func (db *DB) Size() int {
	return len(db.entries)
}

type document struct {
	Entries  map[string]models.Entry `json:"entries"`
	Revision int                     `json:"revision"`
	Version  int                     `json:"version"`
}

// Serialize returns the canonical plaintext of the store. Map keys are
// sorted, so equal stores always serialize to equal strings.
func (db *DB) Serialize() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(document{Entries: db.entries, Revision: db.revision, Version: FormatVersion}); err != nil {
		return "", fmt.Errorf("serialize database: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Deserialize parses a serialized store. Stored entries are kept verbatim,
// except ReuseCount which is recomputed from the passwords; the classifier
// only rates passwords set afterwards.
func Deserialize(plain string, classifier passwords.Classifier, opts ...Option) (*DB, error) {
	var doc document
	if err := json.Unmarshal([]byte(plain), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatabase, err)
	}
	if doc.Version > FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	db := New(classifier, opts...)
	for id, e := range doc.Entries {
		if e.ID == "" {
			e.ID = id
		}
		if e.ID != id {
			return nil, fmt.Errorf("%w: entry %q stored under key %q", ErrInvalidDatabase, e.ID, id)
		}
		db.entries[id] = e
	}
	db.revision = doc.Revision
	db.advanceNextID()
	db.updateReuseCounts()

	return db, nil
}

func (db *DB) advanceNextID() {
	for id := range db.entries {
		if n, err := strconv.Atoi(id); err == nil && n >= db.nextID {
			db.nextID = n + 1
		}
	}
}

// updateReuseCounts recomputes ReuseCount of every entry. Empty passwords
// are never counted as reused.
func (db *DB) updateReuseCounts() {
	counts := make(map[string]int, len(db.entries))
	for _, e := range db.entries {
		if e.Password != "" {
			counts[e.Password]++
		}
	}

	for id, e := range db.entries {
		reuse := 0
		if e.Password != "" {
			reuse = counts[e.Password] - 1
		}
		if e.ReuseCount != reuse {
			e.ReuseCount = reuse
			db.entries[id] = e
		}
	}
}

func (db *DB) timestamp() string {
	return db.now().UTC().Format(http.TimeFormat)
}

func sortByID(entries []models.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return idLess(entries[i].ID, entries[j].ID)
	})
}

// idLess orders numeric ids numerically, before any non-numeric id.
func idLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
