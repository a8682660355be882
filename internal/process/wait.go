package process

import (
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

type WaitStatus = unix.WaitStatus

const (
	WNOHANG   = unix.WNOHANG
	WUNTRACED = unix.WUNTRACED
)

// Waitpid waits for the child 'pid' to change state. 'options' is passed through to the kernel unchanged.
// With WNOHANG and no state change, the returned PID is 0.
func Waitpid(pid PID, options int) (PID, WaitStatus, error) {
	var status WaitStatus
	wpid, err := unix.Wait4(int(pid), &status, options, nil)
	if err != nil {
		return -1, 0, syserror.SystemCall("waitpid", err)
	}
	return PID(wpid), status, nil
}
