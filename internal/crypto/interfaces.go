package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography of the vault. It knows
// nothing about the network, storage or users: it turns a master password
// into keys and a serialized database into a cipher and back.
//
// Key schedule:
//
//	localKey   = DeriveLocalKey(password)              encrypts the database
//	remoteKey  = DeriveRemoteKey(password)             authenticates with the server
//	offlineKey = DeriveOfflineKey(password, salt)      encrypts the offline cache
//	hash       = Fingerprint(plaintext, localKey)      detects stale writes
type KeyChainService interface {
	// DeriveLocalKey stretches the master password with the server's local
	// key salt. The result never leaves the client.
	DeriveLocalKey(masterPassword string) (string, error)

	// DeriveRemoteKey stretches the master password with the server's remote
	// key salt. The result is the server-side authentication secret.
	DeriveRemoteKey(masterPassword string) (string, error)

	// DeriveOfflineKey stretches the master password with the locally stored
	// offline salt using the (much higher) offline iteration count.
	DeriveOfflineKey(masterPassword, offlineSalt string) (string, error)

	// Encrypt seals plaintext under key and returns the SJCL JSON parameter
	// record, which is self-describing: any backend can decrypt it.
	Encrypt(key, plaintext string) (string, error)

	// Decrypt opens an SJCL JSON parameter record. Every failure wraps
	// [ErrDecryptionFailure].
	Decrypt(key, cipherText string) (string, error)

	// Fingerprint derives the push/pull fingerprint of a serialized database.
	Fingerprint(plaintext, localKey string) (string, error)
}

// Backend is one AEAD/KDF implementation. Callers never pick a backend
// directly: a [Selector] asks each backend whether it can serve a request and
// uses the first one that can.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	CanDerive() bool

	// CanEncrypt reports whether Encrypt would honor every field the caller
	// set in p. A nil p means "all defaults".
	CanEncrypt(p *Params) bool

	// CanDecrypt reports whether the backend supports the mode, key size,
	// tag size and IV length recorded in p.
	CanDecrypt(p Params) bool

	// DeriveKey is PBKDF2-HMAC-SHA256 with an optional SHA-512 pre-hash of
	// secret. The 32-byte result is returned as lowercase hex.
	DeriveKey(secret, salt string, iterations int, prehash bool) (string, error)

	// Encrypt fills every field of p the caller left empty and returns the
	// complete record including the ciphertext.
	Encrypt(plaintext, key string, p *Params) (Params, error)

	Decrypt(key string, p Params) (string, error)
}
