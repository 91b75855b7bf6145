// Package schema provides the principal schematics for all other packages. It
// defines the structures describing a sorting candidate and provides
// implementations for handling (Unix-based) operating system syscalls. The
// package serves as a foundational layer for filesystem interactions
// throughout the codebase.
package schema
