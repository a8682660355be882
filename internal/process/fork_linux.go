package process

import (
	_ "unsafe" // for go:linkname

	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

// beforeFork blocks signals and disables stack growth on the current goroutine.
//
//go:linkname beforeFork syscall.runtime_BeforeFork
func beforeFork()

// afterFork undoes beforeFork.
//
//go:linkname afterFork syscall.runtime_AfterFork
func afterFork()

// Fork duplicates the calling process. The parent receives the child's PID and the child receives 0.
//
// Only the calling thread exists in the child. The Go runtime's other threads do not, so
// until the child calls Exec or Exit it should avoid allocating, blocking on channels or
// anything else that may need the scheduler or garbage collector. This is not enforced.
//
//go:norace
func Fork() (PID, error) {
	beforeFork()
	pid, _, errno := unix.RawSyscall6(unix.SYS_CLONE, uintptr(unix.SIGCHLD), 0, 0, 0, 0, 0)
	afterFork()
	if errno != 0 {
		return -1, syserror.SystemCall("fork", errno)
	}
	return PID(pid), nil
}
