package store

import "errors"

// Sentinel errors returned by token stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrUnknownStore is returned by [NewClientStorages] for an unsupported
	// Session.Store value.
	ErrUnknownStore = errors.New("unknown token store")

	// ErrCorruptedSession is returned when a persisted token exists but
	// cannot be decoded or unsealed (for example, the file store secret has
	// changed).
	ErrCorruptedSession = errors.New("stored session is corrupted")
)

// Low-level database operation errors wrapped by the SQLite store.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when the token column cannot be scanned.
	ErrScanningRow = errors.New("failed to scan session token row")
)
