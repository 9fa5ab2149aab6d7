package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passing(name string) Check {
	return Check{
		Name:    name,
		Message: name + " failed",
		Run:     func(_ context.Context) error { return nil },
	}
}

func failing(name string, err error) Check {
	return Check{
		Name:    name,
		Message: name + " failed",
		Run:     func(_ context.Context) error { return err },
	}
}

func TestRunner_Run_AllPass(t *testing.T) {
	runner := NewRunner([]Check{passing("one"), passing("two")})
	assert.NoError(t, runner.Run(context.Background()))
}

func TestRunner_Run_StopsAtFirstFailure(t *testing.T) {
	var order []string
	record := func(name string, err error) Check {
		return Check{
			Name:    name,
			Message: name + " failed",
			Run: func(_ context.Context) error {
				order = append(order, name)
				return err
			},
		}
	}

	boom := errors.New("boom")
	runner := NewRunner([]Check{
		record("first", nil),
		record("second", boom),
		record("third", nil),
	})

	err := runner.Run(context.Background())
	require.Error(t, err)

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "second", failure.Name)
	assert.Equal(t, "second failed", failure.Message)
	assert.ErrorIs(t, failure, boom)

	// The third check must never run
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner([]Check{passing("one")})
	err := runner.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// Cancellation is not a precondition failure and must not surface
	// as one check's fixed diagnostic
	var failure *Failure
	assert.False(t, errors.As(err, &failure))
}

func TestRunner_RunAll_CollectsEveryResult(t *testing.T) {
	boom := errors.New("boom")
	runner := NewRunner([]Check{
		passing("one"),
		failing("two", boom),
		passing("three"),
	})

	results := runner.RunAll(context.Background())
	require.Len(t, results, 3)

	assert.True(t, results[0].Passed())
	assert.False(t, results[1].Passed())
	assert.True(t, results[2].Passed())
	assert.ErrorIs(t, results[1].Err, boom)
}

func TestFailure_Error(t *testing.T) {
	f := &Failure{Name: "interpreter", Message: "Python is missing", Err: errors.New("not found")}
	assert.Equal(t, "Python is missing: not found", f.Error())

	f = &Failure{Name: "interpreter", Message: "Python is missing"}
	assert.Equal(t, "Python is missing", f.Error())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.py")
	require.NoError(t, os.WriteFile(present, []byte("print()\n"), 0o600))

	ctx := context.Background()

	t.Run("present", func(t *testing.T) {
		check := FileExists("entry file", "entry file missing", present)
		assert.NoError(t, check.Run(ctx))
	})

	t.Run("absent", func(t *testing.T) {
		absent := filepath.Join(dir, "absent.py")
		check := FileExists("entry file", "entry file missing", absent)
		err := check.Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), fmt.Sprintf("%s does not exist", absent))
	})

	t.Run("directory", func(t *testing.T) {
		check := FileExists("entry file", "entry file missing", dir)
		err := check.Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}
