//go:build !cgo

package cmem

import "github.com/rawbytedev/fixedcstr/internal/common"

const Available = false

type Malloc struct{}

func (Malloc) Alloc(int) []byte { panic(ErrUnavailable) }
func (Malloc) Free([]byte)      { panic(ErrUnavailable) }

// Strlen scans p in Go when cgo is off.
func Strlen(p *byte) int {
	return common.CStrLen(p)
}

func Strcmp(a, b *byte) int {
	x, y := string(common.CBytes(a)), string(common.CBytes(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func GoString(p *byte) string {
	return string(common.CBytes(p))
}
