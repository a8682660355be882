package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lua")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	script := writeScript(t, `
		local sys = require("sys")
		assert(arg[1] == "hello")
		local fd = sys.open(arg[2], "w")
		sys.write(fd, arg[0])
		sys.close(fd)
	`)

	require.NoError(t, run(script, []string{"hello", out}))
	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, script, string(contents))
}

func TestRunErrors(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.lua"), nil)
	assert.ErrorContains(t, err, "Failed to read script")

	err = run(writeScript(t, `this is not lua`), nil)
	assert.ErrorContains(t, err, "Failed to load script")

	err = run(writeScript(t, `require("sys").open("/", "bogus")`), nil)
	assert.ErrorContains(t, err, "invalid file open mode 'bogus'")
}
