package crypto

import (
	"crypto/sha512"
	"fmt"
)

// Iteration counts of the key schedule.
const (
	// PBKDF2Difficulty is used for the local key, the remote key and the
	// fingerprint. It must stay well under a second on commodity hardware.
	PBKDF2Difficulty = 32768

	// OfflinePBKDF2Difficulty protects the offline cache, which an attacker
	// can attack locally without any rate limit.
	OfflinePBKDF2Difficulty = 1048576
)

// derivedKeySize is the PBKDF2 output length; hex encoding doubles it.
const derivedKeySize = 32

// kdfPassword returns the PBKDF2 password bytes for secret. Human passwords
// are pre-hashed with SHA-512; derived key material (fingerprints) is not.
func kdfPassword(secret string, prehash bool) []byte {
	if !prehash {
		return []byte(secret)
	}
	sum := sha512.Sum512([]byte(secret))
	return sum[:]
}

func checkIterations(iterations int) error {
	if iterations < 1 {
		return fmt.Errorf("%w: iteration count must be positive, got %d", ErrInvalidParams, iterations)
	}
	return nil
}
