package fs

import (
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

// Ioctl issues a device control request on fd. When arg is nil the request is sent without
// an argument, otherwise arg is passed as a plain integer. Pointer arguments are not supported.
func Ioctl(fd FD, request uint, arg *int) (int, error) {
	var (
		ret int
		err error
	)
	if arg == nil {
		ret, err = ioctl(fd, request)
	} else {
		ret, err = ioctlInt(fd, request, *arg)
	}
	if err != nil {
		return -1, syserror.SystemCall("ioctl", err)
	}
	return ret, nil
}

func ioctlInt(fd FD, request uint, arg int) (int, error) {
	r, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(request), uintptr(arg))
	if errno != 0 {
		return -1, errno
	}
	return int(r), nil
}
