package store

import "errors"

var (
	// ErrDraftNotFound is returned when no draft is stored under the
	// requested key, locally or on the server.
	ErrDraftNotFound = errors.New("draft was not found")
)

// Low-level database operation errors, wrapped together with the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan draft row")
)
