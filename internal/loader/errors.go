package loader

import "errors"

var (
	// ErrMissingInput means the load was attempted before the generator
	// produced its output directory.
	ErrMissingInput = errors.New("input data not found")

	// ErrSchemaMismatch means a CSV file's columns do not match the
	// expected table schema.
	ErrSchemaMismatch = errors.New("input schema mismatch")

	// ErrReferentialIntegrity means a row referenced a primary key that
	// does not exist in the parent table.
	ErrReferentialIntegrity = errors.New("foreign key violation")
)
