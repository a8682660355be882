package process

import (
	"github.com/hack-pad/luasys/internal/interop"
	"github.com/hack-pad/luasys/internal/process"
	lua "github.com/yuin/gopher-lua"
)

// Init registers the process control operations and wait constants on mod.
//
// fork is registered as-is: see process.Fork for what a forked child may safely do.
func Init(L *lua.LState, mod *lua.LTable) {
	interop.SetFunc(L, mod, "fork", fork)
	interop.SetFunc(L, mod, "getpid", getpid)
	interop.SetFunc(L, mod, "getppid", getppid)
	interop.SetFunc(L, mod, "execv", execv)
	interop.SetFunc(L, mod, "execve", execve)
	interop.SetFunc(L, mod, "waitpid", waitpid)
	interop.SetFunc(L, mod, "_exit", exit)
	interop.SetFunc(L, mod, "wifexited", wifexited)
	interop.SetFunc(L, mod, "wexitstatus", wexitstatus)
	interop.SetFunc(L, mod, "wifsignaled", wifsignaled)
	interop.SetFunc(L, mod, "wtermsig", wtermsig)

	mod.RawSetString("WNOHANG", lua.LNumber(process.WNOHANG))
	mod.RawSetString("WUNTRACED", lua.LNumber(process.WUNTRACED))
}

func fork(values []lua.LValue) ([]lua.LValue, error) {
	pid, err := process.Fork()
	if err != nil {
		return nil, err
	}
	return interop.Ints(int(pid)), nil
}

func getpid(values []lua.LValue) ([]lua.LValue, error) {
	return interop.Ints(int(process.Getpid())), nil
}

func getppid(values []lua.LValue) ([]lua.LValue, error) {
	return interop.Ints(int(process.Getppid())), nil
}

func exit(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("_exit", values)
	code := 0
	if args.Has(1) {
		var err error
		code, err = args.Int(1, "status")
		if err != nil {
			return nil, err
		}
	}
	process.Exit(code)
	return nil, nil
}
