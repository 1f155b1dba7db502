package cmd

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogging configures slog with charmbracelet/log on stderr.
// Progress output goes to stdout, so the two never interleave on a terminal line.
func SetupLogging(levelStr string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLevel(levelStr),
		ReportTimestamp: true,
		Prefix:          "reportbake",
	})

	slog.SetDefault(slog.New(logger))
}

// parseLevel maps a config level name to a log level, defaulting to info.
func parseLevel(levelStr string) log.Level {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
