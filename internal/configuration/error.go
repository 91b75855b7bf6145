package configuration

import "errors"

var (
	// ErrInvalidValue occurs when a configuration key holds a value that
	// cannot be parsed into the type of the respective setting.
	ErrInvalidValue = errors.New("invalid configuration value")

	// ErrEmptyValue occurs when a configuration setting is empty, but needs to
	// hold a value.
	ErrEmptyValue = errors.New("configuration value must not be empty")

	// ErrOutOfRange occurs when a numeric configuration setting is outside of
	// its allowed range.
	ErrOutOfRange = errors.New("configuration value out of range")
)
