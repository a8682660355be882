package main

import (
	"fmt"
	"os"

	"github.com/hack-pad/luasys/internal/log"
	"github.com/integrii/flaggy"
)

const logLevelEnv = "LUASYS_LOG_LEVEL"

var version = "unversioned"

func main() {
	logLevel := os.Getenv(logLevelEnv)
	if logLevel == "" {
		logLevel = log.LevelLog.String()
	}
	var scriptPath string

	flaggy.SetName("luasys")
	flaggy.SetDescription("Run a Lua script with the sys module for fork, exec, pipes and raw descriptor I/O")
	flaggy.String(&logLevel, "l", "log-level", "Log level: debug, log, warn or error. Defaults to $"+logLevelEnv)
	flaggy.AddPositionalValue(&scriptPath, "script", 1, true, "Lua script to run. Arguments after -- are passed to the script in 'arg'")
	flaggy.SetVersion(version)
	flaggy.Parse()

	level := log.ParseLevel(logLevel)
	if !level.Valid() {
		fmt.Fprintf(os.Stderr, "Invalid log level: %q\n", logLevel)
		os.Exit(2)
	}
	log.SetLevel(level)

	if err := run(scriptPath, flaggy.TrailingArguments); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
