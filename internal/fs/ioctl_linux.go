package fs

import "golang.org/x/sys/unix"

func ioctl(fd FD, request uint) (int, error) {
	return unix.IoctlRetInt(int(fd), request)
}
