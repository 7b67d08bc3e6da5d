package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername      = errors.New("username is required")
	ErrUsernameTooLong    = errors.New("username is too long")
	ErrInvalidRemoteKey   = errors.New("invalid remote key")
	ErrEmptyData          = errors.New("new_data is required")
	ErrInvalidHash        = errors.New("invalid hash")
	ErrInvalidOldHash     = errors.New("invalid old_hash")
	ErrInvalidNewPassword = errors.New("invalid new_password")
)
