package fixedcstr

// Allocator supplies heap storage for strings that do not fit inline.
//
// Alloc must return a slice of exactly n bytes or panic; there is no
// recoverable out-of-memory path. Free receives each slice returned by
// Alloc exactly once. A nil Allocator means the Go heap.
type Allocator interface {
	Alloc(n int) []byte
	Free(b []byte)
}

func allocate(a Allocator, n int) []byte {
	if a == nil {
		return make([]byte, n)
	}
	b := a.Alloc(n)
	if len(b) != n {
		panic("fixedcstr: allocator returned a buffer of the wrong size")
	}
	return b
}
