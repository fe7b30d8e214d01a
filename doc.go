// Package fixedcstr builds NUL-terminated byte strings for foreign calls
// (cgo, raw system calls) without touching the heap for short input.
//
// A FixedCString keeps text that fits in Capacity bytes (terminator
// included) inside its own inline array and only falls back to a single
// heap buffer of exactly len+1 bytes for longer text. The choice is made
// once at construction; the value is read-only afterwards.
//
//	p := fixedcstr.New(path)
//	defer p.Release()
//	C.puts((*C.char)(unsafe.Pointer(p.Ptr())))
//
// Constructors are inlined into the caller, so as long as the returned
// pointer does not escape, the adapter and its inline buffer live on the
// caller's stack.
//
// Input is treated as opaque bytes. A zero byte inside the input cannot be
// represented in a C string, so the input is cut at the first zero byte;
// Truncated reports when that happened.
package fixedcstr
