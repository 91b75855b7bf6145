package main

import "errors"

// ErrTooManyArgs occurs when more than one positional argument is given.
var ErrTooManyArgs = errors.New("too many arguments, expected at most one recursion order")
