// Package process exposes process lifecycle system calls: fork, exec, wait, getpid and exit.
//
// Nothing here tracks processes between calls. PIDs belong to the caller.
package process

import (
	"github.com/hack-pad/luasys/internal/common"
	"golang.org/x/sys/unix"
)

type PID = common.PID

func Getpid() PID {
	return PID(unix.Getpid())
}

func Getppid() PID {
	return PID(unix.Getppid())
}

// Exit ends the calling process immediately with 'code'. Deferred functions, Lua finalizers and
// buffered output are skipped, so this is safe to use from a forked child.
func Exit(code int) {
	unix.Exit(code)
}
