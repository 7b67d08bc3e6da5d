// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-vaultage/internal/adapter"
	"github.com/MKhiriev/go-vaultage/internal/crypto"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/passwords"
	"github.com/MKhiriev/go-vaultage/internal/store"
	"github.com/MKhiriev/go-vaultage/internal/vaultdb"
	"github.com/MKhiriev/go-vaultage/models"
	"golang.org/x/sync/errgroup"
)

// VaultDeps are the collaborators of a [Vault]. Offline and Classifier may
// be nil; they default to [store.NoOpOfflineProvider] and
// [passwords.NewClassifier].
type VaultDeps struct {
	KeyChain   crypto.KeyChainService
	Transport  adapter.VaultTransport
	Offline    store.OfflineProvider
	Classifier passwords.Classifier
	Logger     *logger.Logger
}

// Vault is an opened credential vault: the decrypted database plus the keys
// and the fingerprint needed to sync it.
//
// A Vault is a single session. It does no locking; callers must not invoke
// its methods concurrently.
type Vault struct {
	creds           *sealedCredentials
	db              *vaultdb.DB
	lastFingerprint string
	demo            bool
	unsyncedSaves   int
	closed          bool

	keyChain   crypto.KeyChainService
	transport  adapter.VaultTransport
	offline    store.OfflineProvider
	classifier passwords.Classifier
	snapshots  *snapshotWriter
	logger     *logger.Logger
}

// NewVault opens a vault. A non-empty cipher is decrypted with
// creds.LocalKey; an empty one gives an empty database. When the vault is
// online, has an offline key and was given a cipher, an offline snapshot is
// submitted right away.
func NewVault(ctx context.Context, creds Credentials, demo bool, cipher string, deps VaultDeps) (*Vault, error) {
	if deps.Offline == nil {
		deps.Offline = store.NoOpOfflineProvider{}
	}
	if deps.Classifier == nil {
		deps.Classifier = passwords.NewClassifier()
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	v := &Vault{
		creds:      sealCredentials(creds),
		db:         vaultdb.New(deps.Classifier),
		demo:       demo,
		keyChain:   deps.KeyChain,
		transport:  deps.Transport,
		offline:    deps.Offline,
		classifier: deps.Classifier,
		snapshots:  newSnapshotWriter(deps.Offline, deps.Logger),
		logger:     deps.Logger,
	}

	if cipher == "" {
		return v, nil
	}

	localKey, err := v.creds.LocalKey()
	if err != nil {
		return nil, err
	}
	if v.db, v.lastFingerprint, err = v.openCipher(cipher, localKey); err != nil {
		return nil, err
	}
	v.saveOfflineVault(ctx)

	return v, nil
}

// Save pushes the database to the server. The revision is bumped first, so
// two saves never push the same plaintext. On a demo server nothing is sent
// and the save counts in [Vault.UnsyncedSaves].
func (v *Vault) Save(ctx context.Context) error {
	if err := v.ensureOnline(); err != nil {
		return err
	}

	revision := v.db.NewRevision()

	if v.demo {
		v.unsyncedSaves++
		v.logger.Info().Str("func", "*Vault.Save").Int("revision", revision).
			Msg("demo server, save kept locally")
		return nil
	}

	localKey, err := v.creds.LocalKey()
	if err != nil {
		return err
	}
	remoteKey, err := v.creds.RemoteKey()
	if err != nil {
		return err
	}

	fingerprint, err := v.pushCipher(ctx, localKey, remoteKey, "")
	if err != nil {
		v.logger.Err(err).Str("func", "*Vault.Save").Int("revision", revision).Msg("push failed")
		return err
	}
	v.lastFingerprint = fingerprint

	v.logger.Info().Str("func", "*Vault.Save").Int("revision", revision).Msg("vault saved")
	v.saveOfflineVault(ctx)
	return nil
}

// Pull replaces the database with the server copy. An empty server vault
// gives an empty database. Saves kept locally by a demo vault are dropped.
func (v *Vault) Pull(ctx context.Context) error {
	if err := v.ensureOnline(); err != nil {
		return err
	}

	localKey, err := v.creds.LocalKey()
	if err != nil {
		return err
	}
	remoteKey, err := v.creds.RemoteKey()
	if err != nil {
		return err
	}

	db, fingerprint, err := v.pullCipher(ctx, localKey, remoteKey)
	if err != nil {
		v.logger.Err(err).Str("func", "*Vault.Pull").Msg("pull failed")
		return err
	}
	v.db, v.lastFingerprint = db, fingerprint
	v.unsyncedSaves = 0

	v.logger.Info().Str("func", "*Vault.Pull").Int("revision", db.Revision()).Int("entries", db.Size()).
		Msg("vault pulled")
	v.saveOfflineVault(ctx)
	return nil
}

// UpdateMasterPassword changes the master password in two steps. The
// database is pushed encrypted with the new local key, authenticated with
// the old remote key, asking the server to switch to the new remote key.
// A pull with the new remote key then confirms the switch. Only after both
// succeed does the vault use the new credentials.
//
// When the push succeeds but the confirmation fails, a *[RotationError]
// says which key the server accepts.
func (v *Vault) UpdateMasterPassword(ctx context.Context, newPassword string) error {
	if err := v.ensureOnline(); err != nil {
		return err
	}
	if newPassword == "" {
		return ErrEmptyMasterPassword
	}

	oldRemoteKey, err := v.creds.RemoteKey()
	if err != nil {
		return err
	}

	base := Credentials{ServerURL: v.creds.serverURL, Username: v.creds.username}
	next, err := deriveCredentials(ctx, v.keyChain, v.offline, newPassword, base, v.creds.offlineEnabled())
	if err != nil {
		return err
	}

	v.db.NewRevision()

	fingerprint, err := v.pushCipher(ctx, next.LocalKey, oldRemoteKey, next.RemoteKey)
	if err != nil {
		v.logger.Err(err).Str("func", "*Vault.UpdateMasterPassword").Msg("rotation push failed")
		return err
	}
	v.lastFingerprint = fingerprint

	db, fingerprint, err := v.pullCipher(ctx, next.LocalKey, next.RemoteKey)
	if err != nil {
		rotationErr := &RotationError{
			Cause:     err,
			ServerKey: v.detectServerKey(ctx, oldRemoteKey, next.RemoteKey),
		}
		v.logger.Error().Err(err).Str("func", "*Vault.UpdateMasterPassword").
			Stringer("server_key", rotationErr.ServerKey).Msg("rotation not confirmed, keeping old credentials")
		return rotationErr
	}

	old := v.creds
	v.creds = sealCredentials(next)
	old.destroy()
	v.db, v.lastFingerprint = db, fingerprint

	v.logger.Info().Str("func", "*Vault.UpdateMasterPassword").Msg("master password changed")
	v.saveOfflineVault(ctx)
	return nil
}

// detectServerKey asks the server which remote key it accepts. Both requests
// are read-only.
func (v *Vault) detectServerKey(ctx context.Context, oldRemoteKey, newRemoteKey string) ServerKey {
	for _, candidate := range []struct {
		key    string
		result ServerKey
	}{
		{key: newRemoteKey, result: ServerKeyNew},
		{key: oldRemoteKey, result: ServerKeyOld},
	} {
		_, err := v.transport.PullCipher(ctx, v.creds.serverURL, v.creds.username, candidate.key)
		if err == nil {
			return candidate.result
		}
		if !errors.Is(err, adapter.ErrAuthentication) {
			v.logger.Debug().Err(err).Str("func", "*Vault.detectServerKey").
				Stringer("candidate", candidate.result).Msg("key check failed")
		}
	}
	return ServerKeyUnknown
}

// pushCipher encrypts and fingerprints the current database concurrently,
// then pushes it based on the last known fingerprint. It returns the new
// fingerprint.
func (v *Vault) pushCipher(ctx context.Context, localKey, remoteKey, newRemoteKey string) (string, error) {
	plain, err := v.db.Serialize()
	if err != nil {
		return "", err
	}

	var cipher, fingerprint string
	var g errgroup.Group
	g.Go(func() error {
		var err error
		cipher, err = v.keyChain.Encrypt(localKey, plain)
		return err
	})
	g.Go(func() error {
		var err error
		fingerprint, err = v.keyChain.Fingerprint(plain, localKey)
		return err
	})
	if err = g.Wait(); err != nil {
		return "", err
	}

	req := models.UpdateCipherRequest{
		NewPassword: newRemoteKey,
		NewData:     cipher,
		OldHash:     v.lastFingerprint,
		NewHash:     fingerprint,
	}
	if err = v.transport.PushCipher(ctx, v.creds.serverURL, v.creds.username, remoteKey, req); err != nil {
		return "", mapAdapterError(err)
	}

	return fingerprint, nil
}

func (v *Vault) pullCipher(ctx context.Context, localKey, remoteKey string) (*vaultdb.DB, string, error) {
	cipher, err := v.transport.PullCipher(ctx, v.creds.serverURL, v.creds.username, remoteKey)
	if err != nil {
		return nil, "", mapAdapterError(err)
	}

	if cipher == "" {
		return vaultdb.New(v.classifier), "", nil
	}
	return v.openCipher(cipher, localKey)
}

// openCipher decrypts cipher and returns the database with its fingerprint.
func (v *Vault) openCipher(cipher, localKey string) (*vaultdb.DB, string, error) {
	plain, err := v.keyChain.Decrypt(localKey, cipher)
	if err != nil {
		return nil, "", err
	}

	db, err := vaultdb.Deserialize(plain, v.classifier)
	if err != nil {
		return nil, "", err
	}

	fingerprint, err := v.keyChain.Fingerprint(plain, localKey)
	if err != nil {
		return nil, "", err
	}
	return db, fingerprint, nil
}

// saveOfflineVault submits an encrypted snapshot of the database when the
// vault is online and has an offline key.
func (v *Vault) saveOfflineVault(ctx context.Context) {
	if !v.creds.offlineEnabled() || v.IsOffline() {
		return
	}

	plain, err := v.db.Serialize()
	if err != nil {
		v.logger.Err(err).Str("func", "*Vault.saveOfflineVault").Msg("error serializing offline vault")
		return
	}
	offlineKey, err := v.creds.OfflineKey()
	if err != nil {
		v.logger.Err(err).Str("func", "*Vault.saveOfflineVault").Msg("error opening offline key")
		return
	}

	v.snapshots.Submit(ctx, func() (string, error) {
		return v.keyChain.Encrypt(offlineKey, plain)
	})
}

func (v *Vault) ensureOnline() error {
	if v.closed {
		return ErrVaultClosed
	}
	if v.IsOffline() {
		return ErrOfflineModeViolation
	}
	return nil
}

// IsOffline reports whether the vault was opened from the offline copy.
func (v *Vault) IsOffline() bool {
	return v.creds.serverURL == OfflineURL
}

// IsInDemoMode reports whether the server is a demo deployment.
func (v *Vault) IsInDemoMode() bool {
	return v.demo
}

// UnsyncedSaves returns how many saves were kept locally because the server
// is in demo mode.
func (v *Vault) UnsyncedSaves() int {
	return v.unsyncedSaves
}

func (v *Vault) Username() string {
	return v.creds.username
}

func (v *Vault) ServerURL() string {
	return v.creds.serverURL
}

// Revision returns the database revision.
func (v *Vault) Revision() int {
	return v.db.Revision()
}

// Fingerprint returns the fingerprint of the last cipher pushed or pulled.
func (v *Vault) Fingerprint() string {
	return v.lastFingerprint
}

// Close waits for pending offline snapshots and drops the keys. The vault
// cannot sync afterwards.
func (v *Vault) Close() error {
	if v.closed {
		return nil
	}
	v.snapshots.Wait()
	v.creds.destroy()
	v.closed = true
	return nil
}
