package cmem

import (
	"strings"
	"testing"

	"github.com/rawbytedev/fixedcstr"
	"github.com/stretchr/testify/require"
)

func TestStrlenMatchesLen(t *testing.T) {
	for _, n := range []int{0, 4, fixedcstr.Capacity - 1, fixedcstr.Capacity, 3 * fixedcstr.Capacity} {
		c := fixedcstr.New(strings.Repeat("q", n))
		require.Equal(t, n, Strlen(c.Ptr()), "length %d", n)
		require.Equal(t, c.String(), GoString(c.Ptr()))
		c.Release()
	}
}

func TestStrcmp(t *testing.T) {
	a := fixedcstr.New("apple")
	b := fixedcstr.Format("%s", "banana")
	require.Equal(t, -1, Strcmp(a.Ptr(), b.Ptr()))
	require.Equal(t, 1, Strcmp(b.Ptr(), a.Ptr()))
	require.Equal(t, 0, Strcmp(a.Ptr(), a.Clone().Ptr()))
}

func TestMallocBackedString(t *testing.T) {
	if !Available {
		require.PanicsWithValue(t, ErrUnavailable, func() { Malloc{}.Alloc(8) })
		return
	}
	long := strings.Repeat("z", fixedcstr.Capacity+99)
	c := fixedcstr.NewWith(Malloc{}, long)
	require.True(t, c.IsAllocated())
	require.Equal(t, len(long), Strlen(c.Ptr()))
	require.Equal(t, long, GoString(c.Ptr()))

	cp := c.Clone()
	c.Release()
	require.Equal(t, long, GoString(cp.Ptr()))
	cp.Release()

	short := fixedcstr.NewWith(Malloc{}, "stack")
	require.False(t, short.IsAllocated())
	require.Equal(t, 5, Strlen(short.Ptr()))
	short.Release()
}

func TestMallocFreeEmpty(t *testing.T) {
	if !Available {
		t.Skip("cgo disabled")
	}
	require.NotPanics(t, func() { Malloc{}.Free(nil) })
}
