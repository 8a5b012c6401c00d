package probemap

import "errors"

var (
	// ErrInvalidConfig is returned by constructors when the capacity is not
	// positive or the load factor is outside the open interval (0, 1).
	// Not retryable: the caller has to fix the arguments.
	ErrInvalidConfig = errors.New("probemap: invalid configuration")

	// ErrKeyNotFound is returned by Get and Delete for an absent key.
	ErrKeyNotFound = errors.New("probemap: key not found")
)
