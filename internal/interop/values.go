package interop

import (
	"math"

	"github.com/hack-pad/luasys/internal/syserror"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// Args reads positional arguments for the operation 'op'. Positions are 1-based, like Lua's.
type Args struct {
	op     string
	values []lua.LValue
}

func NewArgs(op string, values []lua.LValue) Args {
	return Args{op: op, values: values}
}

// Has reports whether argument 'pos' was supplied and is not nil.
func (a Args) Has(pos int) bool {
	return pos >= 1 && pos <= len(a.values) && a.values[pos-1] != lua.LNil
}

func (a Args) get(pos int) lua.LValue {
	if pos < 1 || pos > len(a.values) {
		return lua.LNil
	}
	return a.values[pos-1]
}

func (a Args) badArg(pos int, name, expected string, value lua.LValue) error {
	return syserror.InvalidArgument(a.op, "bad argument #%d '%s' (%s expected, got %s)", pos, name, expected, value.Type().String())
}

func (a Args) Int(pos int, name string) (int, error) {
	value := a.get(pos)
	number, ok := value.(lua.LNumber)
	if !ok {
		return 0, a.badArg(pos, name, "integer", value)
	}
	f := float64(number)
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, syserror.InvalidArgument(a.op, "bad argument #%d '%s' (number has no integer representation)", pos, name)
	}
	return int(f), nil
}

// OptInt returns a pointer to the integer at 'pos', or nil when the argument is absent or nil.
func (a Args) OptInt(pos int, name string) (*int, error) {
	if !a.Has(pos) {
		return nil, nil
	}
	value, err := a.Int(pos, name)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (a Args) String(pos int, name string) (string, error) {
	switch value := a.get(pos).(type) {
	case lua.LString:
		return string(value), nil
	case lua.LNumber:
		return value.String(), nil
	default:
		return "", a.badArg(pos, name, "string", value)
	}
}

// Strings reads a sequence table (indexes 1..n) of strings.
func (a Args) Strings(pos int, name string) ([]string, error) {
	value := a.get(pos)
	table, ok := value.(*lua.LTable)
	if !ok {
		return nil, a.badArg(pos, name, "table", value)
	}
	length := table.Len()
	strs := make([]string, 0, length)
	for i := 1; i <= length; i++ {
		switch elem := table.RawGetInt(i).(type) {
		case lua.LString:
			strs = append(strs, string(elem))
		case lua.LNumber:
			strs = append(strs, elem.String())
		default:
			return nil, syserror.InvalidArgument(a.op, "bad argument #%d '%s' (element %d: string expected, got %s)", pos, name, i, elem.Type().String())
		}
	}
	return strs, nil
}

func Ints(values ...int) []lua.LValue {
	return lo.Map(values, func(value int, _ int) lua.LValue {
		return lua.LNumber(value)
	})
}

func SliceFromStrings(L *lua.LState, strs []string) *lua.LTable {
	table := L.CreateTable(len(strs), 0)
	for _, s := range strs {
		table.Append(lua.LString(s))
	}
	return table
}
