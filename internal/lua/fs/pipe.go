package fs

import (
	"github.com/hack-pad/luasys/internal/fs"
	"github.com/hack-pad/luasys/internal/interop"
	lua "github.com/yuin/gopher-lua"
)

// pipe() -> read_fd, write_fd
func (s fileShim) pipe(values []lua.LValue) ([]lua.LValue, error) {
	r, w, err := fs.Pipe()
	if err != nil {
		return nil, err
	}
	return interop.Ints(int(r), int(w)), nil
}
