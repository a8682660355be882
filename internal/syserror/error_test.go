package syserror

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestSystemCall(t *testing.T) {
	err := SystemCall("open", unix.ENOENT)
	assert.Equal(t, "open() failed: no such file or directory", err.Error())
	assert.Equal(t, "ENOENT", err.Code())
	assert.Equal(t, "open", err.Op())
	assert.Equal(t, KindSystemCall, err.Kind())
	assert.True(t, errors.Is(err, unix.ENOENT))
	assert.True(t, IsKind(errors.Wrap(err, "outer"), KindSystemCall))
	assert.False(t, IsKind(err, KindInvalidArgument))
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("open", "invalid file open mode %q", "x")
	assert.Equal(t, `open(): invalid file open mode "x"`, err.Message())
	assert.Equal(t, "EINVAL", err.Code())
	assert.Equal(t, "InvalidArgument", err.Kind().String())
	assert.True(t, IsKind(err, KindInvalidArgument))
	assert.False(t, IsKind(errors.New("plain"), KindInvalidArgument))
}

func TestUnknownErrno(t *testing.T) {
	err := SystemCall("read", errors.New("not an errno"))
	assert.Equal(t, "EIO", err.Code())
}
