package main

import (
	"bytes"
	"path/filepath"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/hack-pad/luasys/internal/interop"
	"github.com/hack-pad/luasys/internal/log"
	"github.com/hack-pad/luasys/internal/lua/sys"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// run executes the script at scriptPath with 'sys' preloaded. The script sees its path as arg[0] and 'args' as arg[1..n].
func run(scriptPath string, args []string) error {
	src, err := readScript(scriptPath)
	if err != nil {
		return err
	}

	L := lua.NewState()
	defer L.Close()
	sys.Preload(L)

	argTable := interop.SliceFromStrings(L, args)
	argTable.RawSetInt(0, lua.LString(scriptPath))
	L.SetGlobal("arg", argTable)

	fn, err := L.Load(bytes.NewReader(src), scriptPath)
	if err != nil {
		return errors.Wrap(err, "Failed to load script")
	}
	log.Debugf("Running script %s with args %v", scriptPath, args)
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

func readScript(scriptPath string) ([]byte, error) {
	absPath, err := filepath.Abs(scriptPath)
	if err != nil {
		return nil, err
	}
	fs := osfs.NewFS()
	fsPath, err := fs.FromOSPath(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid script path %q", scriptPath)
	}
	src, err := hackpadfs.ReadFile(fs, fsPath)
	return src, errors.Wrapf(err, "Failed to read script %q", scriptPath)
}
