package store

import "errors"

// Sentinel errors returned by repository methods for the few business rules
// that are reported as failures rather than as a false result. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrRecipeNotFound is returned when a filter is attached to a recipe
	// that does not exist.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrFilterNotFound is returned when a filter referenced by id or by
	// value does not exist.
	ErrFilterNotFound = errors.New("filter was not found")
)

// Errors raised while setting up a storage backend.
var (
	// ErrUnknownDriver is returned when the configured storage driver is
	// neither mongo, postgres nor sqlite.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrConnectingDatabase wraps any failure to reach the configured database.
	ErrConnectingDatabase = errors.New("error connecting database")

	// ErrCreatingIndexes is returned when the unique indexes backing the
	// add-if-absent operations cannot be created.
	ErrCreatingIndexes = errors.New("error creating indexes")
)

// Low-level SQL errors. Driver errors are returned unchanged; these only
// cover failures that happen before a statement reaches the database.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrDecodingColumn is returned when a JSON column (ingredients, steps)
	// or an id column cannot be decoded.
	ErrDecodingColumn = errors.New("error decoding column")
)
