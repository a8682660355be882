package fs

import (
	"github.com/hack-pad/luasys/internal/syserror"
	"golang.org/x/sys/unix"
)

// Mode is an open-mode token, like "r" or "w+".
type Mode string

const (
	ModeRead        Mode = "r"
	ModeWrite       Mode = "w"
	ModeAppend      Mode = "a"
	ModeReadPlus    Mode = "r+"
	ModeWritePlus   Mode = "w+"
	ModeAppendPlus  Mode = "a+"
	ModeCreateNew   Mode = "CRT"
	ModeWriteCreate Mode = "WRC"
)

const defaultOpenPerm = 0644

var modeFlags = map[Mode]int{
	ModeRead:        unix.O_RDONLY,
	ModeWrite:       unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC,
	ModeAppend:      unix.O_WRONLY | unix.O_CREAT | unix.O_APPEND,
	ModeReadPlus:    unix.O_RDWR,
	ModeWritePlus:   unix.O_RDWR | unix.O_CREAT | unix.O_TRUNC,
	ModeAppendPlus:  unix.O_RDWR | unix.O_CREAT | unix.O_APPEND,
	ModeCreateNew:   unix.O_WRONLY | unix.O_CREAT | unix.O_EXCL,
	ModeWriteCreate: unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC,
}

// ParseMode validates an open-mode token. Anything outside the fixed token set is an InvalidArgument.
func ParseMode(token string) (Mode, error) {
	mode := Mode(token)
	if _, ok := modeFlags[mode]; !ok {
		return "", syserror.InvalidArgument("open", "invalid file open mode '%s'", token)
	}
	return mode, nil
}

// Flags returns the open(2) flag bitmask for m, or -1 for an unknown mode.
func (m Mode) Flags() int {
	flags, ok := modeFlags[m]
	if !ok {
		return -1
	}
	return flags
}

// Creates reports whether opening with m may create the file, which makes the permission argument meaningful.
func (m Mode) Creates() bool {
	return m.Flags() != -1 && m.Flags()&unix.O_CREAT != 0
}
