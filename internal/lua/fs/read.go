package fs

import (
	"github.com/hack-pad/luasys/internal/fs"
	"github.com/hack-pad/luasys/internal/interop"
	lua "github.com/yuin/gopher-lua"
)

// read(fd, count) -> data, or nil at end of stream
func (s fileShim) read(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("read", values)
	fd, err := args.Int(1, "fd")
	if err != nil {
		return nil, err
	}
	count, err := args.Int(2, "count")
	if err != nil {
		return nil, err
	}

	data, err := fs.Read(fs.FD(fd), count)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []lua.LValue{lua.LNil}, nil
	}
	return []lua.LValue{lua.LString(data)}, nil
}
