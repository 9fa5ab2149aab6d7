// Package preflight runs the precondition checks the launcher performs
// before starting the GUI.
package preflight

import (
	"context"
	"fmt"
	"os"
)

// Check is a single launch precondition
type Check struct {
	// Name identifies the check in diagnostics
	Name string
	// Message is the fixed user-facing line printed when the check fails
	Message string
	// Run performs the check; a nil return means the precondition holds
	Run func(ctx context.Context) error
}

// Result records the outcome of one check
type Result struct {
	Check Check
	// Err is the underlying failure, nil on success
	Err error
}

// Passed reports whether the check succeeded
func (r Result) Passed() bool {
	return r.Err == nil
}

// Failure is returned by Runner.Run when a precondition does not hold.
// It carries the check's fixed message so callers can print it verbatim.
type Failure struct {
	Name    string
	Message string
	Err     error
}

// Error implements the error interface
func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

// Unwrap exposes the underlying check error
func (f *Failure) Unwrap() error {
	return f.Err
}

// Runner executes preflight checks in order
type Runner struct {
	checks []Check
}

// NewRunner creates a runner over the given checks
func NewRunner(checks []Check) *Runner {
	return &Runner{checks: checks}
}

// Run executes the checks sequentially and stops at the first failure,
// returning it as a *Failure. A canceled or expired context is returned
// as the context's own error, not as a check failure.
func (r *Runner) Run(ctx context.Context) error {
	for _, check := range r.checks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := check.Run(ctx); err != nil {
			return &Failure{Name: check.Name, Message: check.Message, Err: err}
		}
	}
	return nil
}

// RunAll executes every check regardless of failures and returns all
// results in order. Used by the doctor command, which wants the full
// picture rather than the first problem.
func (r *Runner) RunAll(ctx context.Context) []Result {
	results := make([]Result, 0, len(r.checks))
	for _, check := range r.checks {
		results = append(results, Result{Check: check, Err: check.Run(ctx)})
	}
	return results
}

// FileExists builds a check that the named file is present on disk
func FileExists(name, message, path string) Check {
	return Check{
		Name:    name,
		Message: message,
		Run: func(_ context.Context) error {
			info, err := os.Stat(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("%s does not exist", path)
				}
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory, not a file", path)
			}
			return nil
		},
	}
}
