//go:build unix && !linux

package fs

import "golang.org/x/sys/unix"

func ioctl(fd FD, request uint) (int, error) {
	r, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(request), 0)
	if errno != 0 {
		return -1, errno
	}
	return int(r), nil
}
