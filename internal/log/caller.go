package log

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	luasysCommonPrefix = "github.com/hack-pad/luasys/"
)

func getCaller(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	if ix := strings.Index(file, luasysCommonPrefix); ix != -1 {
		file = file[ix+len(luasysCommonPrefix):]
	}
	fn := runtime.FuncForPC(pc).Name()
	fn = fn[strings.LastIndexAny(fn, "./")+1:]
	return fmt.Sprintf("%s:%d:%s()", file, line, fn)
}
