package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrOfflineDisabled is returned by the no-op offline provider for every
	// operation that needs a local copy.
	ErrOfflineDisabled = errors.New("offline mode is not enabled")

	// ErrOfflineCipherNotFound is returned when no snapshot was saved yet.
	ErrOfflineCipherNotFound = errors.New("no offline cipher was saved")

	// ErrOfflineSaltNotFound is returned when a snapshot is saved before the
	// offline salt was created.
	ErrOfflineSaltNotFound = errors.New("offline salt was not found")

	// ErrVaultNotFound is returned when the server has no vault for the
	// requested username.
	ErrVaultNotFound = errors.New("vault was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
