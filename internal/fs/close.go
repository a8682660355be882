package fs

import (
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

func Close(fd FD) error {
	if err := unix.Close(int(fd)); err != nil {
		return syserror.SystemCall("close", err)
	}
	return nil
}
