package fs

import (
	"github.com/hack-pad/luasys/internal/interop"
	lua "github.com/yuin/gopher-lua"
)

type fileShim struct{}

// Init registers the descriptor operations on mod.
func Init(L *lua.LState, mod *lua.LTable) {
	shim := fileShim{}
	interop.SetFunc(L, mod, "open", shim.open)
	interop.SetFunc(L, mod, "close", shim.close)
	interop.SetFunc(L, mod, "pipe", shim.pipe)
	interop.SetFunc(L, mod, "read", shim.read)
	interop.SetFunc(L, mod, "write", shim.write)
	interop.SetFunc(L, mod, "ioctl", shim.ioctl)
}
