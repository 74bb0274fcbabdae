package cli

import (
	"log/slog"
)

// CLI is the root of the kong command tree.
var CLI struct {
	LogLevel string `help:"Log verbosity" enum:"debug,info,warn,error" default:"info"`

	Scan  ScanCmd  `cmd:"" help:"Scan a directory into a file tree and report totals"`
	Bench BenchCmd `cmd:"" help:"Time tree traversals over a scanned directory"`
}

// ConfigureLogging applies the root log-level flag to the default logger.
func ConfigureLogging() {
	var level slog.Level
	switch CLI.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(level)
}
