package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Stdin defaults to os.Stdin so generators can ask their own questions.
	Stdin io.Reader
}

// Run executes name with args in dir. A non-zero exit is returned as *CommandError.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandError{Command: FormatCommand(name, args...), ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("executing %s: %w", FormatCommand(name, args...), err)
	}
	return nil
}
