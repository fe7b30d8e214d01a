package fixedcstr

import (
	"unicode/utf8"

	"github.com/rawbytedev/fixedcstr/internal/common"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// FixedCString is a write-once NUL-terminated byte string. Exactly one of
// the inline array or the heap buffer is active, as reported by Storage.
//
// A FixedCString must not be copied: the inline pointer would change and a
// heap buffer would gain a second owner. Use Clone for a deep copy.
type FixedCString struct {
	noCopy noCopy

	kind  Storage
	n     int
	cut   bool
	local [Capacity]byte
	heap  []byte
	alloc Allocator
}

// New builds a FixedCString from s using the Go heap for long input.
func New(s string) *FixedCString {
	c := new(FixedCString)
	c.setString(nil, s)
	return c
}

// NewBytes is New for a byte slice. b is copied.
func NewBytes(b []byte) *FixedCString {
	c := new(FixedCString)
	c.setBytes(nil, b)
	return c
}

// NewWith builds a FixedCString from s, taking heap storage from a.
func NewWith(a Allocator, s string) *FixedCString {
	c := new(FixedCString)
	c.setString(a, s)
	return c
}

// NewBytesWith is NewWith for a byte slice.
func NewBytesWith(a Allocator, b []byte) *FixedCString {
	c := new(FixedCString)
	c.setBytes(a, b)
	return c
}

// setString and setBytes stay out of line so the constructors above remain
// cheap enough to inline and the adapter can live on the caller's stack.
//
//go:noinline
func (c *FixedCString) setString(a Allocator, s string) {
	s, c.cut = common.ClipNULString(s)
	c.n = len(s)
	if fits(len(s)) {
		c.kind = Inline
		copy(c.local[:], s)
		c.local[len(s)] = 0
		return
	}
	c.kind = Heap
	c.alloc = a
	c.heap = allocate(a, len(s)+1)
	copy(c.heap, s)
	c.heap[len(s)] = 0
}

//go:noinline
func (c *FixedCString) setBytes(a Allocator, b []byte) {
	b, c.cut = common.ClipNUL(b)
	c.n = len(b)
	if fits(len(b)) {
		c.kind = Inline
		copy(c.local[:], b)
		c.local[len(b)] = 0
		return
	}
	c.kind = Heap
	c.alloc = a
	c.heap = allocate(a, len(b)+1)
	copy(c.heap, b)
	c.heap[len(b)] = 0
}

// Ptr returns the first byte of the NUL-terminated buffer, for handing to
// C as (*C.char)(unsafe.Pointer(p)) or to a system call.
//
// This is the one unchecked escape hatch of the type. The pointer is valid
// until Release and only while c stays where it is: keep c alive across
// the foreign call and never let the callee retain the pointer.
func (c *FixedCString) Ptr() *byte {
	if c.kind == Heap {
		return &c.heap[0]
	}
	return &c.local[0]
}

// Len is the number of bytes before the terminator.
func (c *FixedCString) Len() int {
	return c.n
}

// Bytes returns the payload without the terminator. The slice aliases c.
func (c *FixedCString) Bytes() []byte {
	if c.kind == Heap {
		return c.heap[:c.n:c.n]
	}
	return c.local[:c.n:c.n]
}

// BytesWithNUL returns the payload followed by its terminator.
func (c *FixedCString) BytesWithNUL() []byte {
	if c.kind == Heap {
		return c.heap[: c.n+1 : c.n+1]
	}
	return c.local[: c.n+1 : c.n+1]
}

// String returns a copy of the payload.
func (c *FixedCString) String() string {
	return string(c.Bytes())
}

// ValidString returns a copy of the payload with ill-formed UTF-8 replaced
// by U+FFFD.
func (c *FixedCString) ValidString() string {
	b := c.Bytes()
	if utf8.Valid(b) {
		return string(b)
	}
	out, _, _ := transform.Bytes(runes.ReplaceIllFormed(), b)
	return string(out)
}

func (c *FixedCString) Storage() Storage {
	return c.kind
}

// IsAllocated reports whether the string lives in heap storage.
func (c *FixedCString) IsAllocated() bool {
	return c.kind == Heap
}

// Truncated reports whether the input held a zero byte and was cut there.
func (c *FixedCString) Truncated() bool {
	return c.cut
}

// Clone returns an independent copy. Heap storage is taken from the same
// allocator as c.
func (c *FixedCString) Clone() *FixedCString {
	d := new(FixedCString)
	d.setBytes(c.alloc, c.Bytes())
	d.cut = c.cut
	return d
}

// Release returns heap storage to its allocator and resets c to an empty
// inline string. Ownership is dropped before the buffer is freed, so a
// second Release has nothing left to free.
func (c *FixedCString) Release() {
	if c.kind == Heap {
		h, a := c.heap, c.alloc
		c.heap, c.alloc = nil, nil
		if a != nil {
			a.Free(h)
		}
	}
	c.kind = Inline
	c.n = 0
	c.cut = false
	c.local[0] = 0
}
