package fs

import (
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

// Pipe creates an unnamed pipe and returns its read and write ends.
func Pipe() (r, w FD, err error) {
	var fds [2]int
	err = unix.Pipe(fds[:])
	if err != nil {
		return -1, -1, syserror.SystemCall("pipe", err)
	}
	return FD(fds[0]), FD(fds[1]), nil
}
