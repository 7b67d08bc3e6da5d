package service

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleWrite means the server cipher moved since the last pull. Pull,
	// then retry the change.
	ErrStaleWrite = errors.New("the server has a newer version of the vault")
	// ErrBadCredentials means the server rejected the username/remote key.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrDemoModeRejected means a demo server refused a write.
	ErrDemoModeRejected = errors.New("server is in demo mode")
	// ErrNetwork covers transport failures and unexpected server answers.
	ErrNetwork = errors.New("network error")
	// ErrOfflineModeViolation is returned by every operation that would
	// change the vault or reach the server while it runs offline.
	ErrOfflineModeViolation = errors.New("this operation is not allowed in offline mode")
	// ErrRotationUnconfirmed is wrapped by [RotationError].
	ErrRotationUnconfirmed = errors.New("master password change was pushed but could not be confirmed")

	ErrVaultClosed         = errors.New("vault is closed")
	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptyMasterPassword = errors.New("master password is required")
	ErrInvalidServerURL    = errors.New("invalid server url")
	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// ServerKey tells which remote key the server accepted after an
// unconfirmed master password change.
type ServerKey int

const (
	// ServerKeyUnknown means neither key could be confirmed, usually because
	// the server was unreachable.
	ServerKeyUnknown ServerKey = iota
	// ServerKeyOld means the server still expects the current password.
	ServerKeyOld
	// ServerKeyNew means the server switched to the new password; log in
	// again with it.
	ServerKeyNew
)

func (k ServerKey) String() string {
	switch k {
	case ServerKeyOld:
		return "old"
	case ServerKeyNew:
		return "new"
	default:
		return "unknown"
	}
}

// RotationError is returned by [Vault.UpdateMasterPassword] when the push
// went through but the confirmation pull failed. The vault keeps its old
// credentials.
type RotationError struct {
	Cause     error
	ServerKey ServerKey
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("%v (server accepts the %s key): %v", ErrRotationUnconfirmed, e.ServerKey, e.Cause)
}

func (e *RotationError) Unwrap() []error {
	return []error{ErrRotationUnconfirmed, e.Cause}
}
