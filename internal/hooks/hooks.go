// Package hooks invokes the external post-mutation hook command.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Events passed to the hook as its first argument.
const (
	EventAdd      = "add"
	EventComplete = "complete"
	EventDelete   = "delete"
)

// Options configures a hook invocation.
type Options struct {
	// Command is the hook executable. Empty disables the hook.
	Command string
	// Event names the mutation that just happened.
	Event string
	// TaskID is the id of the task the mutation touched.
	TaskID int
	// TasksFile is the path of the freshly saved tasks file.
	TasksFile string
	// WorkDir, when set, becomes the hook's working directory.
	WorkDir string
}

// Result captures the outcome of a hook invocation.
type Result struct {
	Ran      bool
	Command  []string
	ExitCode int
}

// Invoke runs the hook command with the event name, task id, and tasks file
// path as arguments. An empty command returns without running anything.
// The hook inherits both output streams.
func Invoke(ctx context.Context, opts Options) (Result, error) {
	if opts.Command == "" {
		return Result{}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	args := []string{opts.Event, strconv.Itoa(opts.TaskID), opts.TasksFile}
	cmd := exec.CommandContext(ctx, opts.Command, args...)
	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	result := Result{
		Ran:      true,
		Command:  cmd.Args,
		ExitCode: exitCodeFromError(err),
	}
	if err != nil {
		return result, fmt.Errorf("hook command failed: %w", err)
	}
	return result, nil
}

func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
