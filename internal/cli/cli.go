// Package cli implements the check-tasks and show-task command entrypoints.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/talaatharb/taskcheck/internal/config"
	"github.com/talaatharb/taskcheck/internal/logging"
)

// Version is set via ldflags at build time.
var Version = "dev"

// newLogger builds the stderr diagnostic logger for a command.
func newLogger(prefix string, cfg *config.Config) *log.Logger {
	opts := logging.DefaultOptions(prefix)
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	return logging.NewConsoleLogger(os.Stderr, opts)
}

func printVersion(w io.Writer, name string) {
	fmt.Fprintf(w, "%s version %s\n", name, Version)
}
