package koch

import "errors"

var (
	// ErrNotInteger occurs when a recursion order is given that is not an
	// integer.
	ErrNotInteger = errors.New("recursion order must be an integer")

	// ErrNegativeOrder occurs when a recursion order below zero is given.
	ErrNegativeOrder = errors.New("recursion order must not be negative")
)
