package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-vaultage/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the account name of a vault reference.
	FieldUsername = "username"

	// FieldRemoteKey targets the authentication key of a vault reference.
	FieldRemoteKey = "remote_key"

	// FieldNewData targets the cipher carried by a push.
	FieldNewData = "new_data"

	// FieldNewHash targets the fingerprint of the pushed cipher.
	FieldNewHash = "new_hash"

	// FieldOldHash targets the fingerprint the push expects to replace. It
	// may be empty.
	FieldOldHash = "old_hash"

	// FieldNewPassword targets the remote key a push switches to. It may be
	// empty.
	FieldNewPassword = "new_password"
)

// MaxUsernameLength bounds the username in runes.
const MaxUsernameLength = 128

// VaultRequestValidator validates [models.VaultRef] and
// [models.UpdateCipherRequest], as values or pointers.
type VaultRequestValidator struct{}

func NewVaultRequestValidator() Validator {
	return &VaultRequestValidator{}
}

func (v *VaultRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultRef:
		return v.validateVaultRef(value, fields...)
	case *models.VaultRef:
		return v.validateVaultRef(*value, fields...)

	case models.UpdateCipherRequest:
		return v.validateUpdateCipherRequest(value, fields...)
	case *models.UpdateCipherRequest:
		return v.validateUpdateCipherRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultRequestValidator) validateVaultRef(ref models.VaultRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldRemoteKey}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(ref.Username) == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(ref.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldRemoteKey:
			if !isHex(ref.RemoteKey) {
				return ErrInvalidRemoteKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultRequestValidator) validateUpdateCipherRequest(req models.UpdateCipherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNewData, FieldNewHash, FieldOldHash, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldNewData:
			if req.NewData == "" {
				return ErrEmptyData
			}
		case FieldNewHash:
			if !isHex(req.NewHash) {
				return ErrInvalidHash
			}
		case FieldOldHash:
			if req.OldHash != "" && !isHex(req.OldHash) {
				return ErrInvalidOldHash
			}
		case FieldNewPassword:
			if req.NewPassword != "" && !isHex(req.NewPassword) {
				return ErrInvalidNewPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isHex reports whether s is a non-empty lowercase hex string, the form of
// every derived key and fingerprint.
func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}
