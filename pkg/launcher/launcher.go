// Package launcher starts the GUI script as a subprocess and reports
// how it exited.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// Launcher invokes the GUI entry file with a Python interpreter
type Launcher struct {
	// Interpreter is the path of the Python executable to run
	Interpreter string
	// Script is the GUI entry file passed to the interpreter
	Script string
	// Dir is the working directory for the child process; empty means
	// the launcher's own working directory
	Dir string
	// Timeout bounds the child's lifetime; zero means wait forever
	Timeout time.Duration

	// Stdout and Stderr receive the child's output; nil means the
	// launcher's own streams
	Stdout io.Writer
	Stderr io.Writer
}

// ErrTimeout is reported when the child was killed for exceeding the
// configured timeout
var ErrTimeout = errors.New("gui process timed out")

// Run starts the GUI process and blocks until it terminates. The
// returned int is the child's exit code: 0 on success, the child's own
// code on a clean non-zero exit, and 1 when the process could not be
// started at all.
func (l *Launcher) Run(ctx context.Context) (int, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, l.Interpreter, l.Script)
	cmd.Dir = l.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = l.stdout()
	cmd.Stderr = l.stderr()
	configureSysProcAttr(cmd)

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return 1, fmt.Errorf("%w after %v", ErrTimeout, l.Timeout)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), fmt.Errorf("gui exited with code %d", exitErr.ExitCode())
		}
		return 1, fmt.Errorf("starting gui process: %w", err)
	}

	return 0, nil
}

func (l *Launcher) stdout() io.Writer {
	if l.Stdout != nil {
		return l.Stdout
	}
	return os.Stdout
}

func (l *Launcher) stderr() io.Writer {
	if l.Stderr != nil {
		return l.Stderr
	}
	return os.Stderr
}
