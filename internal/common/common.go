package common

import (
	"bytes"
	"strings"
	"unsafe"
)

// IndexNUL returns the index of the first zero byte in b, or -1.
func IndexNUL(b []byte) int {
	return bytes.IndexByte(b, 0)
}

// IndexNULString returns the index of the first zero byte in s, or -1.
func IndexNULString(s string) int {
	return strings.IndexByte(s, 0)
}

// ClipNUL returns the prefix of b before its first zero byte.
func ClipNUL(b []byte) ([]byte, bool) {
	if i := IndexNUL(b); i >= 0 {
		return b[:i], true
	}
	return b, false
}

// ClipNULString returns the prefix of s before its first zero byte.
func ClipNULString(s string) (string, bool) {
	if i := IndexNULString(s); i >= 0 {
		return s[:i], true
	}
	return s, false
}

// CStrLen walks memory from p until it finds a zero byte.
// p must point at a NUL-terminated buffer; nil yields 0.
func CStrLen(p *byte) int {
	if p == nil {
		return 0
	}
	var n int
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}

// CBytes aliases the bytes at p up to (not including) the terminator.
// The result shares memory with p and must not outlive it.
func CBytes(p *byte) []byte {
	n := CStrLen(p)
	if n == 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}
