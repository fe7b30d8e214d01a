//go:build cgo

package cmem

/*
#cgo noescape strlen
#cgo nocallback strlen
#cgo noescape strcmp
#cgo nocallback strcmp

#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"
)

const Available = true

// Malloc is a fixedcstr.Allocator backed by C malloc and free.
type Malloc struct{}

func (Malloc) Alloc(n int) []byte {
	p := C.malloc(C.size_t(n))
	if p == nil {
		panic(ErrOutOfMemory)
	}
	return unsafe.Slice((*byte)(p), n)
}

func (Malloc) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	C.free(unsafe.Pointer(unsafe.SliceData(b)))
}

// Strlen calls C strlen on p.
func Strlen(p *byte) int {
	return int(C.strlen((*C.char)(unsafe.Pointer(p))))
}

// Strcmp calls C strcmp and returns its sign.
func Strcmp(a, b *byte) int {
	r := C.strcmp((*C.char)(unsafe.Pointer(a)), (*C.char)(unsafe.Pointer(b)))
	switch {
	case r < 0:
		return -1
	case r > 0:
		return 1
	}
	return 0
}

// GoString copies the C string at p into a Go string.
func GoString(p *byte) string {
	return C.GoString((*C.char)(unsafe.Pointer(p)))
}
