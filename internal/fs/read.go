package fs

import (
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

// maxReadSize bounds the buffer allocated for one read. Larger requests become short reads.
const maxReadSize = 1 << 20

// Read issues a single read(2) of up to count bytes and returns the bytes actually read.
// Short reads are returned as-is. At end of stream Read returns a nil slice and a nil error.
// A zero count returns an empty, non-nil slice. Counts above maxReadSize read at most maxReadSize bytes.
func Read(fd FD, count int) ([]byte, error) {
	if count < 0 {
		return nil, syserror.InvalidArgument("read", "negative byte count %d", count)
	}
	buf := make([]byte, min(count, maxReadSize))
	n, err := unix.Read(int(fd), buf)
	if err != nil {
		return nil, syserror.SystemCall("read", err)
	}
	if n == 0 && count > 0 {
		return nil, nil
	}
	return buf[:n], nil
}
