//go:build unix && !linux

package process

import (
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

// Fork is only supported on Linux.
func Fork() (PID, error) {
	return -1, syserror.SystemCall("fork", unix.ENOSYS)
}
