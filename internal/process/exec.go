package process

import (
	"os"
	"strings"

	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

// Execv replaces the current process image with 'path', keeping the current environment.
// On success it never returns. argv[0] is always replaced with path.
func Execv(path string, argv []string) error {
	return exec("execv", path, argv, os.Environ())
}

// Execve is Execv with an explicit "KEY=VALUE" environment.
func Execve(path string, argv, envp []string) error {
	return exec("execve", path, argv, envp)
}

func exec(op, path string, args, env []string) error {
	argv := argVector(path, args)
	if err := checkNoNUL(op, "path", []string{path}); err != nil {
		return err
	}
	if err := checkNoNUL(op, "argument", argv); err != nil {
		return err
	}
	if err := checkNoNUL(op, "environment entry", env); err != nil {
		return err
	}
	err := unix.Exec(path, argv, env)
	// still here, so the exec failed and this process keeps running
	return syserror.SystemCall(op, err)
}

// argVector builds the argument vector for an exec call. The first element is always 'path',
// followed by args[1:].
func argVector(path string, args []string) []string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, path)
	if len(args) > 1 {
		argv = append(argv, args[1:]...)
	}
	return argv
}

func checkNoNUL(op, kind string, values []string) error {
	for _, value := range values {
		if strings.IndexByte(value, 0) != -1 {
			return syserror.InvalidArgument(op, "%s contains a NUL byte: %q", kind, value)
		}
	}
	return nil
}
