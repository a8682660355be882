package fs

import (
	"github.com/hack-pad/luasys/internal/fs"
	"github.com/hack-pad/luasys/internal/interop"
	lua "github.com/yuin/gopher-lua"
)

func (s fileShim) close(values []lua.LValue) ([]lua.LValue, error) {
	fd, err := interop.NewArgs("close", values).Int(1, "fd")
	if err != nil {
		return nil, err
	}
	return nil, fs.Close(fs.FD(fd))
}
