package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup by email or unique_id
	// produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmailAlreadyExists is returned when creating a user fails because
	// the email column's unique constraint was violated.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUniqueIDTaken is returned when inserting a freshly allocated
	// unique_id loses the race to a concurrent login with the same
	// surname. The allocator retries on it.
	ErrUniqueIDTaken = errors.New("unique_id already taken")

	// ErrStoreUnavailable is returned when the persistence layer fails at
	// the I/O level. The caller surfaces a warning to the user but keeps
	// the in-memory prediction result usable for the current session.
	ErrStoreUnavailable = errors.New("prediction store unavailable")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
