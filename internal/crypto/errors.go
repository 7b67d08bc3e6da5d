// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrDecryptionFailure is returned when a cipher is malformed, was
	// produced with another key, or fails authentication.
	ErrDecryptionFailure = errors.New("cannot decrypt cipher")

	// ErrBackendUnavailable is returned when no backend can serve the
	// requested operation with the requested parameters.
	ErrBackendUnavailable = errors.New("no crypto backend available for the requested parameters")

	// ErrParamsMismatch is returned when a backend did not honor a parameter
	// the caller set explicitly.
	ErrParamsMismatch = errors.New("crypto backend returned parameters different from the requested ones")

	// ErrInvalidParams is returned for parameter records that cannot be
	// parsed or carry values outside the supported ranges.
	ErrInvalidParams = errors.New("invalid cipher parameters")

	// ErrMissingParameter is the parent of all "missing X" decryption errors.
	ErrMissingParameter = errors.New("missing cipher parameter")
)

// Named causes for records that lack a field required to decrypt.
var (
	ErrMissingIV         = fmt.Errorf("%w: missing IV", ErrMissingParameter)
	ErrMissingTagSize    = fmt.Errorf("%w: missing tag length", ErrMissingParameter)
	ErrMissingKeySize    = fmt.Errorf("%w: missing key size", ErrMissingParameter)
	ErrMissingMode       = fmt.Errorf("%w: missing mode", ErrMissingParameter)
	ErrMissingSalt       = fmt.Errorf("%w: missing salt", ErrMissingParameter)
	ErrMissingIterations = fmt.Errorf("%w: missing iteration count", ErrMissingParameter)
	ErrMissingCiphertext = fmt.Errorf("%w: missing ciphertext", ErrMissingParameter)
)
