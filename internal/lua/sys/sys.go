// Package sys builds the Lua "sys" module: a table of POSIX process and descriptor operations.
//
//	local sys = require("sys")
//	local r, w = sys.pipe()
//	sys.write(w, "x")
//	print(sys.read(r, 1))
//
// Every operation raises a Lua error on failure, so failures can be caught with pcall.
// Descriptors and PIDs are plain integers owned by the script.
package sys

import (
	"github.com/hack-pad/luasys/internal/interop"
	"github.com/hack-pad/luasys/internal/log"
	"github.com/hack-pad/luasys/internal/lua/fs"
	"github.com/hack-pad/luasys/internal/lua/process"
	lua "github.com/yuin/gopher-lua"
)

const ModuleName = "sys"

// Preload makes the module available to require("sys") in L.
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// Loader is a lua.LGFunction that pushes a new module table.
func Loader(L *lua.LState) int {
	mod := L.NewTable()
	fs.Init(L, mod)
	process.Init(L, mod)
	interop.SetFunc(L, mod, "setloglevel", setLogLevel)
	L.Push(mod)
	return 1
}

// setloglevel([level]) -> level
func setLogLevel(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("setloglevel", values)
	if args.Has(1) {
		level, err := args.String(1, "level")
		if err != nil {
			return nil, err
		}
		log.SetLevel(log.ParseLevel(level))
	}
	return []lua.LValue{lua.LString(log.Level().String())}, nil
}
