package vaultdb

import "errors"

var (
	// ErrEntryNotFound is returned when no entry has the requested id.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrDuplicateEntryID is returned by ReplaceAll when two records share
	// an id.
	ErrDuplicateEntryID = errors.New("duplicate entry id")

	// ErrEmptyEntryID is returned by ReplaceAll for a record without id.
	ErrEmptyEntryID = errors.New("empty entry id")

	// ErrUnsupportedVersion is returned by Deserialize for a database
	// written by a newer format version.
	ErrUnsupportedVersion = errors.New("unsupported database version")

	// ErrInvalidDatabase is returned by Deserialize for input that is not a
	// database document.
	ErrInvalidDatabase = errors.New("invalid database")
)
