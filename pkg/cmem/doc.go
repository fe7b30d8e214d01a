// Package cmem hands fixedcstr heap storage from the C allocator and wraps
// a few libc string functions for code that needs to look at a C string
// from Go.
//
// Strings built with Malloc live outside the Go heap, so the garbage
// collector never frees them: every FixedCString built with Malloc must be
// released. Without cgo, Available is false and Malloc panics with
// ErrUnavailable.
package cmem

import "errors"

var (
	ErrOutOfMemory = errors.New("cmem: malloc returned NULL")
	ErrUnavailable = errors.New("cmem: built without cgo")
)
