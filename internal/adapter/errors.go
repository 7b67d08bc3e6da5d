package adapter

import "errors"

var (
	// ErrNotFastForward is returned when the server holds a newer cipher
	// than the one the push was based on (EFAST).
	ErrNotFastForward = errors.New("the server has a newer version of the database")
	// ErrAuthentication is returned when the username/remote key pair is
	// rejected (EAUTH) or the request is refused with 401/403.
	ErrAuthentication = errors.New("invalid credentials")
	// ErrDemoMode is returned when a demo server refuses a write (EDEMO).
	ErrDemoMode = errors.New("server in demo mode")
	// ErrTransport covers network failures and unreadable responses.
	ErrTransport = errors.New("transport error")
	// ErrUnknownServerError is returned for non-2xx statuses and error codes
	// the protocol does not define.
	ErrUnknownServerError = errors.New("unexpected server response")
)
