package syserror

import (
	"fmt"

	"github.com/hack-pad/luasys/internal/log"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type Kind int

const (
	// KindSystemCall means the operating system rejected the call.
	KindSystemCall Kind = iota + 1
	// KindInvalidArgument means the call was rejected before reaching the operating system.
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindSystemCall:
		return "SystemCallError"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return "UnknownError"
	}
}

type Error interface {
	error
	Message() string
	Code() string
	Op() string
	Kind() Kind
}

type sysErr struct {
	error
	op   string
	kind Kind
	code string
}

// SystemCall wraps an error returned by the operating system for operation 'op'.
func SystemCall(op string, err error) Error {
	return &sysErr{
		error: errors.WithMessage(err, op+"() failed"),
		op:    op,
		kind:  KindSystemCall,
		code:  mapToErrNo(err),
	}
}

// InvalidArgument reports a caller mistake found before any system call was issued.
func InvalidArgument(op, format string, args ...interface{}) Error {
	return &sysErr{
		error: errors.Errorf("%s(): %s", op, fmt.Sprintf(format, args...)),
		op:    op,
		kind:  KindInvalidArgument,
		code:  "EINVAL",
	}
}

func (e *sysErr) Message() string {
	return e.Error()
}

func (e *sysErr) Code() string {
	return e.code
}

func (e *sysErr) Op() string {
	return e.op
}

func (e *sysErr) Kind() Kind {
	return e.kind
}

func (e *sysErr) Unwrap() error {
	return e.error
}

// IsKind reports whether err, or anything it wraps, is an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var target Error
	return errors.As(err, &target) && target.Kind() == kind
}

func mapToErrNo(err error) string {
	var errno unix.Errno
	if errors.As(err, &errno) {
		if name := unix.ErrnoName(errno); name != "" {
			return name
		}
		return fmt.Sprintf("errno %d", int(errno))
	}
	log.Errorf("Unknown error type: (%T) %+v", err, err)
	return "EIO"
}
