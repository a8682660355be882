package fs

import (
	"github.com/hack-pad/luasys/internal/fs"
	"github.com/hack-pad/luasys/internal/interop"
	"github.com/hack-pad/luasys/internal/syserror"
	lua "github.com/yuin/gopher-lua"
)

// ioctl(fd, request, [arg]) -> result
func (s fileShim) ioctl(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("ioctl", values)
	fd, err := args.Int(1, "fd")
	if err != nil {
		return nil, err
	}
	request, err := args.Int(2, "request")
	if err != nil {
		return nil, err
	}
	if request < 0 {
		return nil, syserror.InvalidArgument("ioctl", "negative request code %d", request)
	}
	arg, err := args.OptInt(3, "arg")
	if err != nil {
		return nil, err
	}

	ret, err := fs.Ioctl(fs.FD(fd), uint(request), arg)
	if err != nil {
		return nil, err
	}
	return interop.Ints(ret), nil
}
