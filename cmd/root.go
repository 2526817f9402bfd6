// Package cmd implements the CLI command structure for tasker.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasker/internal/config"
	"github.com/nibzard/tasker/internal/hooks"
	"github.com/nibzard/tasker/internal/logging"
	"github.com/nibzard/tasker/internal/store"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tasker CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasker", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand
	remainingArgs := fs.Args()
	if len(remainingArgs) == 0 {
		printUsage(fs, os.Stderr)
		return fmt.Errorf("missing command")
	}
	subcommand := remainingArgs[0]
	remainingArgs = remainingArgs[1:]

	// Execute the subcommand
	switch subcommand {
	case "add":
		return addCommand(ctx, cfg, remainingArgs)
	case "list":
		return listCommand(cfg, remainingArgs)
	case "complete":
		return completeCommand(ctx, cfg, remainingArgs)
	case "delete":
		return deleteCommand(ctx, cfg, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "completion":
		return completionCommand(cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newStore builds the backing store with a logger wired from config.
func newStore(cfg *config.Config) (*store.Store, *log.Logger) {
	logger := logging.New(cfg)
	return store.New(cfg.TasksFile, store.WithLogger(logger)), logger
}

// runHook fires the configured hook command after a successful mutation.
// A failing hook is reported but never fails the command that triggered it.
func runHook(ctx context.Context, cfg *config.Config, logger *log.Logger, event string, taskID int) {
	res, err := hooks.Invoke(ctx, hooks.Options{
		Command:   cfg.HookCommand,
		Event:     event,
		TaskID:    taskID,
		TasksFile: cfg.TasksFile,
	})
	if err != nil {
		logger.Warn("hook command failed", "event", event, "exit_code", res.ExitCode, "err", err)
	}
}

// parseID extracts the single task id argument for complete and delete.
func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing task id")
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", args[0])
	}
	return id, nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("tasker version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tasker - Manage your tasks from the command line")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasker [options] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <text>          Add a new task")
	fmt.Fprintln(w, "  list                List all tasks")
	fmt.Fprintln(w, "  complete <id>       Mark a task as complete")
	fmt.Fprintln(w, "  delete <id>         Delete a task")
	fmt.Fprintln(w, "  tui                 Launch the interactive terminal UI")
	fmt.Fprintln(w, "  doctor              Check config and tasks file health")
	fmt.Fprintln(w, "  completion <shell>  Output shell completion (bash|zsh|fish|powershell)")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  tasker add \"Buy milk\"")
	fmt.Fprintln(w, "  tasker list")
	fmt.Fprintln(w, "  tasker complete 1")
	fmt.Fprintln(w, "  tasker delete 1")
}
