package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNoCurrentUser      = errors.New("no current user")
	ErrConflict           = errors.New("document update conflict")
	ErrInvalidExecContext = errors.New("invalid execution context")
)
