package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/metalagman/tasktracker/internal/task"
	"github.com/spf13/cobra"
)

const (
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 3
	exitStorage  = 4
)

// usageError marks errors caused by bad command-line input.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// usageArgs wraps a cobra positional args validator so its errors map to exitUsage.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

// noSubcommandArgs rejects positional args on the root command, which only dispatches.
func noSubcommandArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, usageError{err: fmt.Errorf("invalid task id %q: must be a positive integer", raw)}
	}
	return id, nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func exitCode(err error) int {
	var usage usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usage),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidTask):
		return exitUsage
	case errors.Is(err, task.ErrNotFound):
		return exitNotFound
	case errors.Is(err, task.ErrReadWrite),
		errors.Is(err, task.ErrUnreadable),
		errors.Is(err, task.ErrLocked):
		return exitStorage
	default:
		return exitFailure
	}
}
