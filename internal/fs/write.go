package fs

import (
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

// Write issues a single write(2) of all of data. A short write is not an error: the
// partial count is returned and the caller decides whether to retry the remainder.
func Write(fd FD, data []byte) (int, error) {
	n, err := unix.Write(int(fd), data)
	if err != nil {
		return 0, syserror.SystemCall("write", err)
	}
	return n, nil
}
