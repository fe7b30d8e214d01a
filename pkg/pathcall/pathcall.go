//go:build linux

package pathcall

import (
	"io/fs"
	"os"
	"unsafe"

	"github.com/rawbytedev/fixedcstr"
	"golang.org/x/sys/unix"
)

// cwd is AT_FDCWD held in a variable so it converts to uintptr at run time.
var cwd = unix.AT_FDCWD

func pathErr(op, path string, errno unix.Errno) error {
	if errno == 0 {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: errno}
}

// checkNUL refuses a path the adapter had to cut at an embedded NUL.
func checkNUL(op, path string, p *fixedcstr.FixedCString) error {
	if p.Truncated() {
		return &fs.PathError{Op: op, Path: path, Err: unix.EINVAL}
	}
	return nil
}

// Access checks path against mode (unix.R_OK, W_OK, X_OK or F_OK).
func Access(path string, mode uint32) error {
	p := fixedcstr.New(path)
	defer p.Release()
	if err := checkNUL("access", path, p); err != nil {
		return err
	}
	_, _, errno := unix.Syscall(unix.SYS_FACCESSAT, uintptr(cwd), uintptr(unsafe.Pointer(p.Ptr())), uintptr(mode))
	return pathErr("access", path, errno)
}

func Mkdir(path string, perm os.FileMode) error {
	p := fixedcstr.New(path)
	defer p.Release()
	if err := checkNUL("mkdir", path, p); err != nil {
		return err
	}
	_, _, errno := unix.Syscall(unix.SYS_MKDIRAT, uintptr(cwd), uintptr(unsafe.Pointer(p.Ptr())), uintptr(perm.Perm()))
	return pathErr("mkdir", path, errno)
}

func Chmod(path string, perm os.FileMode) error {
	p := fixedcstr.New(path)
	defer p.Release()
	if err := checkNUL("chmod", path, p); err != nil {
		return err
	}
	_, _, errno := unix.Syscall(unix.SYS_FCHMODAT, uintptr(cwd), uintptr(unsafe.Pointer(p.Ptr())), uintptr(perm.Perm()))
	return pathErr("chmod", path, errno)
}

// Remove unlinks a non-directory.
func Remove(path string) error {
	return unlink("remove", path, 0)
}

// RemoveDir removes an empty directory.
func RemoveDir(path string) error {
	return unlink("rmdir", path, unix.AT_REMOVEDIR)
}

func unlink(op, path string, flags int) error {
	p := fixedcstr.New(path)
	defer p.Release()
	if err := checkNUL(op, path, p); err != nil {
		return err
	}
	_, _, errno := unix.Syscall(unix.SYS_UNLINKAT, uintptr(cwd), uintptr(unsafe.Pointer(p.Ptr())), uintptr(flags))
	return pathErr(op, path, errno)
}

// Readlink reads the target of the symlink at path into buf and returns
// the number of bytes written. A result equal to len(buf) may be cut short.
func Readlink(path string, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, &fs.PathError{Op: "readlink", Path: path, Err: unix.EINVAL}
	}
	p := fixedcstr.New(path)
	defer p.Release()
	if err := checkNUL("readlink", path, p); err != nil {
		return 0, err
	}
	n, _, errno := unix.Syscall6(unix.SYS_READLINKAT, uintptr(cwd), uintptr(unsafe.Pointer(p.Ptr())),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), 0, 0)
	if errno != 0 {
		return 0, pathErr("readlink", path, errno)
	}
	return int(n), nil
}

// Symlink creates link pointing at target.
func Symlink(target, link string) error {
	t := fixedcstr.New(target)
	defer t.Release()
	l := fixedcstr.New(link)
	defer l.Release()
	if t.Truncated() || l.Truncated() {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: unix.EINVAL}
	}
	_, _, errno := unix.Syscall(unix.SYS_SYMLINKAT, uintptr(unsafe.Pointer(t.Ptr())), uintptr(cwd), uintptr(unsafe.Pointer(l.Ptr())))
	if errno != 0 {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: errno}
	}
	return nil
}
