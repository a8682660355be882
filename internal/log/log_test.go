package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		name  string
		level consoleType
	}{
		{"debug", LevelDebug},
		{"log", LevelLog},
		{"warn", LevelWarn},
		{"error", LevelError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			level := ParseLevel(tc.name)
			assert.True(t, level.Valid())
			assert.Equal(t, tc.level, level)
			assert.Equal(t, tc.name, level.String())
		})
	}

	assert.False(t, ParseLevel("verbose").Valid())
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	previous := Level()
	defer func() {
		SetLevel(previous)
		SetOutput(os.Stderr)
	}()

	SetLevel(LevelWarn)
	assert.Zero(t, Debugf("hidden %d", 1))
	assert.Empty(t, buf.String())

	assert.NotZero(t, Warnf("shown %d", 2))
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "log_test.go")

	assert.NotZero(t, Error("plain ", 3))
	assert.Contains(t, buf.String(), "plain 3")

	SetLevel(-1)
	assert.Equal(t, LevelWarn, Level())
}
