package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	// filtering happens in this package, so let everything through
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func writeLog(c consoleType, s string) {
	switch c {
	case LevelDebug:
		logger.Debug(s)
	case LevelWarn:
		logger.Warn(s)
	case LevelError:
		logger.Error(s)
	default:
		logger.Info(s)
	}
}
