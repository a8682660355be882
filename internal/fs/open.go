package fs

import (
	"github.com/hack-pad/luasys/internal/common"
	"github.com/hack-pad/luasys/internal/log"
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

type FD = common.FD

// Open opens path with the flags for mode and returns the new descriptor.
// For creating modes, perm defaults to 0644 when nil. For other modes perm is not passed to the kernel.
func Open(path string, mode Mode, perm *uint32) (FD, error) {
	flags := mode.Flags()
	if flags == -1 {
		return -1, syserror.InvalidArgument("open", "invalid file open mode '%s'", string(mode))
	}

	var (
		fd  int
		err error
	)
	if mode.Creates() {
		permissions := uint32(defaultOpenPerm)
		if perm != nil {
			permissions = *perm
		}
		fd, err = openCreate(path, flags, permissions)
	} else {
		if perm != nil {
			log.Debugf("Ignoring permissions %o for non-creating open mode %q", *perm, mode)
		}
		fd, err = openExisting(path, flags)
	}
	if err != nil {
		return -1, syserror.SystemCall("open", err)
	}
	return FD(fd), nil
}

func openCreate(path string, flags int, perm uint32) (int, error) {
	return unix.Open(path, flags, perm)
}

func openExisting(path string, flags int) (int, error) {
	// the kernel only reads the mode argument when O_CREAT or O_TMPFILE is set
	return unix.Open(path, flags, 0)
}
