package log

import (
	"fmt"

	"go.uber.org/atomic"
)

type consoleType int32

const (
	LevelDebug consoleType = iota
	LevelLog
	LevelWarn
	LevelError
)

var logLevel = atomic.NewInt32(int32(LevelLog))

func (c consoleType) Valid() bool {
	switch c {
	case LevelDebug, LevelLog, LevelWarn, LevelError:
		return true
	default:
		return false
	}
}

func (c consoleType) String() string {
	switch c {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "log"
	}
}

// ParseLevel returns the level named by 'level', or an invalid level if there is no match.
func ParseLevel(level string) consoleType {
	switch level {
	case LevelDebug.String():
		return LevelDebug
	case LevelLog.String():
		return LevelLog
	case LevelWarn.String():
		return LevelWarn
	case LevelError.String():
		return LevelError
	default:
		return -1
	}
}

// SetLevel changes the minimum level written. Invalid levels are ignored.
func SetLevel(level consoleType) {
	if level.Valid() {
		logLevel.Store(int32(level))
	}
}

func Level() consoleType {
	return consoleType(logLevel.Load())
}

func enabled(kind consoleType) bool {
	return kind >= Level()
}

func Debugf(format string, args ...interface{}) int {
	return write(LevelDebug, 1, format, args)
}

func Warnf(format string, args ...interface{}) int {
	return write(LevelWarn, 1, format, args)
}

func Errorf(format string, args ...interface{}) int {
	return write(LevelError, 1, format, args)
}

// Error logs args formatted like fmt.Sprint.
func Error(args ...interface{}) int {
	return write(LevelError, 1, "", args)
}

// write formats with fmt.Sprintf, or fmt.Sprint when format is empty, and adds the caller 'skip' frames up.
func write(kind consoleType, skip int, format string, args []interface{}) int {
	if !enabled(kind) {
		return 0
	}
	var s string
	if format == "" {
		s = fmt.Sprint(args...)
	} else {
		s = fmt.Sprintf(format, args...)
	}
	if caller := getCaller(skip + 1); caller != "" {
		s = caller + " - " + s
	}
	writeLog(kind, s)
	return len(s)
}
