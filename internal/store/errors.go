package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidTableName is returned when a model table name contains
	// anything other than ASCII letters, digits, '_' or '-'. Such names are
	// rejected before they reach the file system or the database.
	ErrInvalidTableName = errors.New("invalid model table name")

	// ErrModelNotFound is returned when the directory of a model, one of
	// its required files, or its registry row does not exist.
	ErrModelNotFound = errors.New("model was not found")

	// ErrReadingModelFile is returned when a model file exists but cannot be
	// read.
	ErrReadingModelFile = errors.New("error reading model file")

	// ErrDecodingAppConfig is returned when appConfig.json is not valid JSON
	// of the expected shape.
	ErrDecodingAppConfig = errors.New("error decoding app config")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan model row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan model rows")

	// ErrUnsupportedDialect is returned by [NewConnect] helpers when a DB
	// has no known placeholder format.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")
)
