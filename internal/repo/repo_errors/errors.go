package repo_errors

import "errors"

var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrNoRowsMatched reports a conditional update whose guard no longer
	// held at write time, i.e. a lost race.
	ErrNoRowsMatched = errors.New("conditional update matched no rows")
)
