package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user violates the unique
	// index on email_address.
	ErrEmailAlreadyExists = errors.New("email address already exists")

	// ErrUserNotFound is returned when no user matches the lookup, or when a
	// course references a user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrCourseNotFound is returned when no course matches the lookup, or
	// when an update or delete scoped to (id, user_id) affects no rows.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrConstraintViolation is returned for integrity violations that have
	// no dedicated sentinel.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrPingingDatabase is returned when the database is not reachable at
	// startup.
	ErrPingingDatabase = errors.New("error pinging database")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
