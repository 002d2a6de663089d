package runtime

import (
	"context"
	"fmt"
	"strings"
)

// Runner executes an external command in dir and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// CommandError reports a command that ran but exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

// FormatCommand joins name and args for display.
func FormatCommand(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
