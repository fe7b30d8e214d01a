//go:build linux

package pathcall

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rawbytedev/fixedcstr"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestDirectoryLifecycle(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "sub")

	require.NoError(t, Mkdir(dir, 0o750))
	require.NoError(t, Access(dir, unix.F_OK))
	st, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, st.IsDir())
	require.Equal(t, os.FileMode(0o750), st.Mode().Perm()&0o750)

	err = Mkdir(dir, 0o750)
	require.ErrorIs(t, err, unix.EEXIST)
	require.ErrorIs(t, err, fs.ErrExist)

	require.NoError(t, RemoveDir(dir))
	require.ErrorIs(t, Access(dir, unix.F_OK), fs.ErrNotExist)
}

func TestFileChmodAndRemove(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))

	require.NoError(t, Chmod(f, 0o640))
	st, err := os.Stat(f)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o640), st.Mode().Perm())

	require.NoError(t, Remove(f))
	_, err = os.Stat(f)
	require.True(t, errors.Is(err, fs.ErrNotExist))

	var pe *fs.PathError
	require.ErrorAs(t, Remove(f), &pe)
	require.Equal(t, "remove", pe.Op)
	require.Equal(t, f, pe.Path)
}

func TestSymlinkReadlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	link := filepath.Join(root, "link")
	require.NoError(t, os.WriteFile(target, nil, 0o600))

	require.NoError(t, Symlink(target, link))
	buf := make([]byte, 4096)
	n, err := Readlink(link, buf)
	require.NoError(t, err)
	require.Equal(t, target, string(buf[:n]))

	var le *os.LinkError
	require.ErrorAs(t, Symlink(target, link), &le)
	require.ErrorIs(t, le, unix.EEXIST)

	_, err = Readlink(link, nil)
	require.ErrorIs(t, err, unix.EINVAL)
	_, err = Readlink(target, buf)
	require.ErrorIs(t, err, unix.EINVAL)
}

func TestEmbeddedNULRejected(t *testing.T) {
	root := t.TempDir()
	require.ErrorIs(t, Access(root+"\x00/etc", unix.F_OK), unix.EINVAL)
	require.ErrorIs(t, Mkdir(root+"/a\x00b", 0o700), unix.EINVAL)
	require.ErrorIs(t, Symlink("x\x00y", filepath.Join(root, "l")), unix.EINVAL)
	_, err := os.Lstat(filepath.Join(root, "a"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLongPathUsesHeap(t *testing.T) {
	if fixedcstr.Capacity > 1024 {
		t.Skip("a heap-sized path would exceed PATH_MAX")
	}
	root := t.TempDir()
	long := root + strings.Repeat("/.", fixedcstr.Capacity)
	require.True(t, fixedcstr.New(long).IsAllocated())
	require.NoError(t, Access(long, unix.F_OK))
	require.ErrorIs(t, Access(long+"/missing", unix.F_OK), fs.ErrNotExist)
}

func BenchmarkAccess(b *testing.B) {
	dir := b.TempDir()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := Access(dir, unix.F_OK); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnixAccess(b *testing.B) {
	dir := b.TempDir()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := unix.Access(dir, unix.F_OK); err != nil {
			b.Fatal(err)
		}
	}
}
