package fixedcstr

import "fmt"

// Format renders format and args with fmt and builds a FixedCString from
// the result. When the rendered text fits inline nothing is allocated,
// neither for rendering nor for the adapter.
func Format(format string, args ...any) *FixedCString {
	c := new(FixedCString)
	c.format(nil, format, args)
	return c
}

// FormatWith is Format taking heap storage from a.
func FormatWith(a Allocator, format string, args ...any) *FixedCString {
	c := new(FixedCString)
	c.format(a, format, args)
	return c
}

//go:noinline
func (c *FixedCString) format(a Allocator, format string, args []any) {
	var b Builder
	b.Appendf(format, args...)
	c.setBytes(a, b.Bytes())
}

// Builder stages text for a FixedCString. It writes into an inline array
// and spills to a growable Go slice once the text no longer fits next to a
// terminator. The zero value is ready to use.
//
// Appendf and the Write methods called directly keep a stack Builder on
// the stack; passing a *Builder to fmt.Fprintf as an io.Writer does not.
type Builder struct {
	noCopy noCopy

	n     int
	local [Capacity]byte
	spill []byte
}

// Appendf appends fmt-formatted text.
func (b *Builder) Appendf(format string, args ...any) {
	if b.spill != nil {
		b.spill = fmt.Appendf(b.spill, format, args...)
		return
	}
	out := fmt.Appendf(b.local[:b.n:Capacity-1], format, args...)
	if fits(len(out)) {
		b.n = len(out)
		return
	}
	// out no longer aliases local; copy it so local never leaks into spill.
	b.spill = append(make([]byte, 0, 2*len(out)), out...)
}

func (b *Builder) WriteString(s string) (int, error) {
	if b.spill == nil {
		if fits(b.n + len(s)) {
			b.n += copy(b.local[b.n:], s)
			return len(s), nil
		}
		b.grow(len(s))
	}
	b.spill = append(b.spill, s...)
	return len(s), nil
}

func (b *Builder) Write(p []byte) (int, error) {
	if b.spill == nil {
		if fits(b.n + len(p)) {
			b.n += copy(b.local[b.n:], p)
			return len(p), nil
		}
		b.grow(len(p))
	}
	b.spill = append(b.spill, p...)
	return len(p), nil
}

func (b *Builder) WriteByte(c byte) error {
	if b.spill == nil {
		if fits(b.n + 1) {
			b.local[b.n] = c
			b.n++
			return nil
		}
		b.grow(1)
	}
	b.spill = append(b.spill, c)
	return nil
}

// grow moves the inline text to a heap slice with room for extra more bytes.
func (b *Builder) grow(extra int) {
	spill := make([]byte, 0, 2*(b.n+extra))
	b.spill = append(spill, b.local[:b.n]...)
}

// Bytes returns the staged text. The slice aliases b.
func (b *Builder) Bytes() []byte {
	if b.spill != nil {
		return b.spill
	}
	return b.local[:b.n]
}

func (b *Builder) Len() int {
	if b.spill != nil {
		return len(b.spill)
	}
	return b.n
}

// Spilled reports whether the staged text moved to the heap.
func (b *Builder) Spilled() bool {
	return b.spill != nil
}

// Reset empties b and drops any spill buffer.
func (b *Builder) Reset() {
	b.n = 0
	b.spill = nil
}

// CString builds a FixedCString from the staged text.
func (b *Builder) CString() *FixedCString {
	c := new(FixedCString)
	c.setBuilder(nil, b)
	return c
}

// CStringWith is CString taking heap storage from a.
func (b *Builder) CStringWith(a Allocator) *FixedCString {
	c := new(FixedCString)
	c.setBuilder(a, b)
	return c
}

//go:noinline
func (c *FixedCString) setBuilder(a Allocator, b *Builder) {
	c.setBytes(a, b.Bytes())
}
