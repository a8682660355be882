package process

import (
	"github.com/hack-pad/luasys/internal/interop"
	"github.com/hack-pad/luasys/internal/process"
	lua "github.com/yuin/gopher-lua"
)

// execv(path, argv) never returns on success
func execv(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("execv", values)
	path, err := args.String(1, "path")
	if err != nil {
		return nil, err
	}
	argv, err := args.Strings(2, "argv")
	if err != nil {
		return nil, err
	}
	return nil, process.Execv(path, argv)
}

// execve(path, argv, envp) never returns on success
func execve(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("execve", values)
	path, err := args.String(1, "path")
	if err != nil {
		return nil, err
	}
	argv, err := args.Strings(2, "argv")
	if err != nil {
		return nil, err
	}
	envp, err := args.Strings(3, "envp")
	if err != nil {
		return nil, err
	}
	return nil, process.Execve(path, argv, envp)
}
