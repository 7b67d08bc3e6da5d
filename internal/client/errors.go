package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command name the client does not
	// implement.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArguments is returned when a command lacks required
	// arguments.
	ErrMissingArguments = errors.New("missing arguments")
)
