package fs

import (
	"github.com/hack-pad/luasys/internal/fs"
	"github.com/hack-pad/luasys/internal/interop"
	"github.com/hack-pad/luasys/internal/log"
	lua "github.com/yuin/gopher-lua"
)

// write(fd, data, [len]) -> bytes_written
//
// The optional third argument is accepted for older scripts and ignored: the full length of data is always written.
func (s fileShim) write(values []lua.LValue) ([]lua.LValue, error) {
	args := interop.NewArgs("write", values)
	fd, err := args.Int(1, "fd")
	if err != nil {
		return nil, err
	}
	data, err := args.String(2, "data")
	if err != nil {
		return nil, err
	}
	if args.Has(3) {
		if length, err := args.Int(3, "len"); err != nil || length != len(data) {
			log.Warnf("write: ignoring length argument %v, writing all %d bytes", values[2], len(data))
		}
	}

	n, err := fs.Write(fs.FD(fd), []byte(data))
	if err != nil {
		return nil, err
	}
	return interop.Ints(n), nil
}
