package fs

import (
	"github.com/hack-pad/luasys/internal/fs"
	"github.com/hack-pad/luasys/internal/interop"
	"github.com/hack-pad/luasys/internal/syserror"
	lua "github.com/yuin/gopher-lua"
)

// open(path, mode, [perm]) -> fd
func (s fileShim) open(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("open", values)
	path, err := args.String(1, "path")
	if err != nil {
		return nil, err
	}
	token, err := args.String(2, "mode")
	if err != nil {
		return nil, err
	}
	mode, err := fs.ParseMode(token)
	if err != nil {
		return nil, err
	}
	perm, err := args.OptInt(3, "perm")
	if err != nil {
		return nil, err
	}
	var permissions *uint32
	if perm != nil {
		if *perm < 0 || *perm > 07777 {
			return nil, syserror.InvalidArgument("open", "permissions out of range: %o", *perm)
		}
		p := uint32(*perm)
		permissions = &p
	}

	fd, err := fs.Open(path, mode, permissions)
	if err != nil {
		return nil, err
	}
	return interop.Ints(int(fd)), nil
}
