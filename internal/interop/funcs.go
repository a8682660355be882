package interop

import (
	"runtime/debug"

	"github.com/hack-pad/luasys/internal/log"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/atomic"
)

// Func is a host-facing operation. It receives the positional Lua arguments and returns the values to push back.
type Func = func(args []lua.LValue) ([]lua.LValue, error)

var lastCallID = atomic.NewUint64(0)

// SetFunc registers fn on table under name. A returned error, or a panic, is raised as a Lua error.
func SetFunc(L *lua.LState, table *lua.LTable, name string, fn Func) *lua.LFunction {
	wrappedFn := L.NewFunction(func(L *lua.LState) int {
		callID := lastCallID.Inc()
		log.Debugf("running op #%d: %s", callID, name)

		args := make([]lua.LValue, L.GetTop())
		for i := range args {
			args[i] = L.Get(i + 1)
		}
		ret, err := call(fn, args)
		if err != nil {
			log.Debugf("failed op #%d: %s: %v", callID, name, err)
			L.RaiseError("%s", err.Error())
			return 0
		}

		log.Debugf("completed op #%d: %s", callID, name)
		for _, value := range ret {
			L.Push(value)
		}
		return len(ret)
	})
	table.RawSetString(name, wrappedFn)
	return wrappedFn
}

func call(fn Func, args []lua.LValue) (ret []lua.LValue, err error) {
	defer handlePanic(&err)
	return fn(args)
}

func handlePanic(err *error) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorf("panic: (%T) %+v\n\n%s", r, r, debug.Stack())
	switch r := r.(type) {
	case error:
		*err = errors.Wrap(r, "panic")
	default:
		*err = errors.Errorf("panic: %+v", r)
	}
}
