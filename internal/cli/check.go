package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/talaatharb/taskcheck/internal/config"
	"github.com/talaatharb/taskcheck/internal/taskfile"
	"github.com/talaatharb/taskcheck/internal/ui"
)

// RunCheck executes the check-tasks CLI. It returns the process exit code
// and any error the caller should report on stderr.
func RunCheck(ctx context.Context, args []string, stdout io.Writer) (int, error) {
	fs := flag.NewFlagSet("check-tasks", flag.ContinueOnError)
	fs.Usage = func() {
		printCheckHelp(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	validate := fs.Bool("validate", false, "Validate the task store against its schema")
	uiMode := fs.String("ui", "", "UI mode (tui for terminal UI)")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return 1, err
	}
	if *help {
		printCheckHelp(fs, stdout)
		return 0, nil
	}
	if *showVersion {
		printVersion(stdout, "check-tasks")
		return 0, nil
	}
	if rest := fs.Args(); len(rest) > 0 {
		return 1, fmt.Errorf("unexpected arguments: %v", rest)
	}

	logger := newLogger("check-tasks", cfg)
	logger.Debug("configuration resolved", "tasks", cfg.TasksFile, "schema", cfg.SchemaFile)

	if *uiMode == "tui" {
		if err := ui.Run(ctx, cfg); err != nil {
			return 1, err
		}
		return 0, nil
	}

	f, err := taskfile.Load(cfg.TasksFile)
	if err != nil {
		return 1, fmt.Errorf("loading task store: %w", err)
	}

	if *validate {
		return runValidate(f, cfg, stdout), nil
	}

	printSummary(stdout, f)
	return 0, nil
}

// printSummary prints completion counts and the first not-passing task.
func printSummary(w io.Writer, f *taskfile.File) {
	c := f.Count()
	fmt.Fprintf(w, "Total: %d\n", c.Total)
	fmt.Fprintf(w, "Passing: %d\n", c.Passing)
	fmt.Fprintf(w, "Remaining: %d\n", c.Remaining)
	fmt.Fprintln(w)

	if next := f.NextRemaining(); next != nil {
		fmt.Fprintln(w, "Next not-passing task:")
		fmt.Fprintf(w, "  ID: %d\n", next.ID)
		fmt.Fprintf(w, "  Title: %s\n", next.Title)
		return
	}
	fmt.Fprintln(w, "All tasks are passing!")
}

// runValidate reports schema validation results for the store.
func runValidate(f *taskfile.File, cfg *config.Config, w io.Writer) int {
	result := f.Validate(taskfile.ValidationOptions{SchemaPath: cfg.SchemaFile})
	for _, warn := range result.Warnings {
		fmt.Fprintf(w, "⚠️  %s\n", warn)
	}
	if result.Valid {
		fmt.Fprintln(w, "✅ Task store is valid")
		return 0
	}
	fmt.Fprintln(w, "❌ Validation failed:")
	for _, e := range result.Errors {
		fmt.Fprintf(w, "   - %v\n", e)
	}
	return 1
}

func printCheckHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "check-tasks - Summarize completion status across the task store")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  check-tasks [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
