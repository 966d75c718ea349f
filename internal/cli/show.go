package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/talaatharb/taskcheck/internal/config"
	"github.com/talaatharb/taskcheck/internal/taskfile"
)

// RunShow executes the show-task CLI. It returns the process exit code
// and any error the caller should report on stderr.
//
// The task id argument is modeled as present-or-absent rather than tested
// for truthiness, so an id of 0 is a normal lookup.
func RunShow(ctx context.Context, args []string, stdout io.Writer) (int, error) {
	fs := flag.NewFlagSet("show-task", flag.ContinueOnError)
	fs.Usage = func() {
		printShowHelp(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return 1, err
	}
	if *help {
		printShowHelp(fs, stdout)
		return 0, nil
	}
	if *showVersion {
		printVersion(stdout, "show-task")
		return 0, nil
	}

	rest := fs.Args()
	if len(rest) > 1 {
		return 1, fmt.Errorf("unexpected arguments: %v", rest[1:])
	}
	if len(rest) == 0 {
		printShowUsage(stdout)
		return 1, nil
	}
	id, err := strconv.Atoi(rest[0])
	if err != nil {
		printShowUsage(stdout)
		return 1, nil
	}

	logger := newLogger("show-task", cfg)
	logger.Debug("configuration resolved", "tasks", cfg.TasksFile, "id", id)

	f, err := taskfile.Load(cfg.TasksFile)
	if err != nil {
		return 1, fmt.Errorf("loading task store: %w", err)
	}

	t := f.GetTask(id)
	if t == nil {
		fmt.Fprintf(stdout, "Task %d not found\n", id)
		return 1, nil
	}

	printDetail(stdout, t)
	return 0, nil
}

// printDetail prints the full detail of a single task.
func printDetail(w io.Writer, t *taskfile.Task) {
	fmt.Fprintf(w, "# %d: %s\n", t.ID, t.Title)
	fmt.Fprintf(w, "passes: %t\n", t.Passes)
	fmt.Fprintf(w, "\nDescription:\n%s\n", t.Description)
	fmt.Fprintf(w, "\nAcceptance criteria (Gherkin):\n%s\n", t.AcceptanceCriteria)
}

// printShowUsage prints the one-line usage message for the missing or
// unusable id argument path. It goes to stdout, matching the contract.
func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: show-task <task_id>")
}

func printShowHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "show-task - Print the full detail of a single task by id")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  show-task [options] <task_id>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
