package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound    = errors.New("resource not found")
	ErrRunNotFound = fmt.Errorf("%w: simulation run", ErrNotFound)
)

// NewRunNotFoundError reports a missing stored run
func NewRunNotFoundError(id RunID) error {
	return fmt.Errorf("%w with id %s", ErrRunNotFound, id)
}

// IsNotFoundError reports whether err is (or wraps) ErrNotFound
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
