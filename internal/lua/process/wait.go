package process

import (
	"github.com/hack-pad/luasys/internal/interop"
	"github.com/hack-pad/luasys/internal/process"
	lua "github.com/yuin/gopher-lua"
)

// waitpid(pid, [options]) -> pid, status
func waitpid(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("waitpid", values)
	pid, err := args.Int(1, "pid")
	if err != nil {
		return nil, err
	}
	options := 0
	if args.Has(2) {
		options, err = args.Int(2, "options")
		if err != nil {
			return nil, err
		}
	}

	wpid, status, err := process.Waitpid(process.PID(pid), options)
	if err != nil {
		return nil, err
	}
	return interop.Ints(int(wpid), int(status)), nil
}

func statusArg(op string, values []lua.LValue) (process.WaitStatus, error) {
	status, err := interop.NewArgs(op, values).Int(1, "status")
	return process.WaitStatus(status), err
}

func wifexited(values []lua.LValue) ([]lua.LValue, error) {
	status, err := statusArg("wifexited", values)
	if err != nil {
		return nil, err
	}
	return []lua.LValue{lua.LBool(status.Exited())}, nil
}

func wexitstatus(values []lua.LValue) ([]lua.LValue, error) {
	status, err := statusArg("wexitstatus", values)
	if err != nil {
		return nil, err
	}
	return interop.Ints(status.ExitStatus()), nil
}

func wifsignaled(values []lua.LValue) ([]lua.LValue, error) {
	status, err := statusArg("wifsignaled", values)
	if err != nil {
		return nil, err
	}
	return []lua.LValue{lua.LBool(status.Signaled())}, nil
}

func wtermsig(values []lua.LValue) ([]lua.LValue, error) {
	status, err := statusArg("wtermsig", values)
	if err != nil {
		return nil, err
	}
	return interop.Ints(int(status.Signal())), nil
}
