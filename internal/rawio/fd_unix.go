//go:build unix

package rawio

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// FD is an open file descriptor written to with raw system calls.
type FD int

// Standard descriptors.
const (
	Stdout FD = 1
	Stderr FD = 2
)

// Write issues a single write(2) system call for all of p. It does not retry
// on short writes or EINTR.
func (fd FD) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n, _, errno := unix.Syscall(
		unix.SYS_WRITE,
		uintptr(fd),
		uintptr(unsafe.Pointer(&p[0])),
		uintptr(len(p)),
	)
	if errno != 0 {
		return 0, errno
	}

	return int(n), nil
}
