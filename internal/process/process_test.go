package process

import (
	"fmt"
	"os"
	osexec "os/exec"
	"testing"

	"github.com/hack-pad/luasys/internal/syserror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const execHelperEnv = "LUASYS_EXEC_HELPER"

func TestGetpid(t *testing.T) {
	assert.Equal(t, PID(os.Getpid()), Getpid())
	assert.Equal(t, PID(os.Getppid()), Getppid())
}

func TestArgVector(t *testing.T) {
	for _, tc := range []struct {
		description string
		args        []string
		expect      []string
	}{
		{"no args", nil, []string{"/bin/ls"}},
		{"first arg replaced", []string{"ls"}, []string{"/bin/ls"}},
		{"remaining args kept", []string{"ls", "-l", "/tmp"}, []string{"/bin/ls", "-l", "/tmp"}},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, argVector("/bin/ls", tc.args))
		})
	}
}

func assertErrno(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var sysErr syserror.Error
	require.True(t, errors.As(err, &sysErr), err)
	assert.Equal(t, syserror.KindSystemCall, sysErr.Kind())
	assert.Equal(t, code, sysErr.Code())
}

func TestExecMissingPath(t *testing.T) {
	reached := false
	err := Execv("/does/not/exist", []string{"exist"})
	reached = true
	assertErrno(t, err, "ENOENT")
	assert.Contains(t, err.Error(), "execv() failed")
	assert.True(t, reached)

	err = Execve("/does/not/exist", nil, []string{"A=B"})
	assertErrno(t, err, "ENOENT")
	assert.Contains(t, err.Error(), "execve() failed")
}

func TestExecNUL(t *testing.T) {
	err := Execve("/bin/sh", []string{"sh", "-c\x00"}, nil)
	assert.True(t, syserror.IsKind(err, syserror.KindInvalidArgument))

	err = Execve("/bin/sh", nil, []string{"A=\x00"})
	assert.True(t, syserror.IsKind(err, syserror.KindInvalidArgument))
}

func TestWaitpidNotChild(t *testing.T) {
	_, _, err := Waitpid(Getpid(), 0)
	assertErrno(t, err, "ECHILD")
}

// TestHelperProcess isn't a real test. It replaces the test binary's process image when run by the exec tests.
func TestHelperProcess(t *testing.T) {
	switch os.Getenv(execHelperEnv) {
	case "execve":
		err := Execve("/bin/sh", []string{"ignored", "-c", `printf '%s %s' "$0" "$GREETING"`}, []string{"GREETING=hello"})
		fmt.Fprintln(os.Stderr, err)
		os.Exit(100)
	case "execv":
		err := Execv("/bin/sh", []string{"ignored", "-c", "exit 3"})
		fmt.Fprintln(os.Stderr, err)
		os.Exit(100)
	}
}

func runHelper(t *testing.T, mode string) *osexec.Cmd {
	t.Helper()
	cmd := osexec.Command(os.Args[0], "-test.run=^TestHelperProcess$")
	cmd.Env = append(os.Environ(), execHelperEnv+"="+mode)
	return cmd
}

func TestExecveReplacesProcess(t *testing.T) {
	out, err := runHelper(t, "execve").Output()
	require.NoError(t, err)
	assert.Equal(t, "/bin/sh hello", string(out))
}

func TestExecvReplacesProcess(t *testing.T) {
	err := runHelper(t, "execv").Run()
	var exitErr *osexec.ExitError
	require.True(t, errors.As(err, &exitErr), err)
	assert.Equal(t, 3, exitErr.ExitCode())
}
