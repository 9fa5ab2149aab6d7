package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/tagcheck-launcher/pkg/config"
	"github.com/blairham/tagcheck-launcher/pkg/launcher"
	"github.com/blairham/tagcheck-launcher/pkg/preflight"
)

// LaunchCommand handles the launch command functionality. It is also
// what a bare `tagcheck-launcher` invocation runs.
type LaunchCommand struct{}

// LaunchOptions holds command-line options for the launch command
type LaunchOptions struct {
	CommonOptions
	Timeout time.Duration `long:"timeout" description:"Kill the GUI if it runs longer than this (0 means no limit)" default:"0"`
	DryRun  bool          `long:"dry-run" description:"Run the preflight checks but do not start the GUI"`
}

// launchBase describes the launch command for parsing and help output
func launchBase() *BaseCommand {
	return &BaseCommand{
		Name:        "launch",
		Description: "Check the environment and start the Component Tag Checker GUI.",
		Examples: []Example{
			{Command: "tagcheck-launcher", Description: "Same as 'tagcheck-launcher launch'"},
			{Command: "tagcheck-launcher launch --verbose", Description: "Show each preflight check as it passes"},
			{Command: "tagcheck-launcher launch --dir tools/tagcheck", Description: "Launch scripts from another directory"},
			{Command: "tagcheck-launcher launch --dry-run", Description: "Verify the environment without starting the GUI"},
		},
		Notes: []string{
			"Preflight checks run in order: Python interpreter, tkinter,",
			"check_component_tags_gui.py, check_component_tags.py.",
			"",
			"Exit codes:",
			"  0: GUI launched and exited cleanly",
			"  1: A preflight check failed or the GUI exited with an error",
		},
	}
}

// Help returns the help text for the launch command
func (c *LaunchCommand) Help() string {
	var opts LaunchOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	return launchBase().GenerateHelp(parser)
}

// Synopsis returns a short description of the launch command
func (c *LaunchCommand) Synopsis() string {
	return "Check the environment and start the tag checker GUI"
}

// Run executes the launch command with the given arguments
func (c *LaunchCommand) Run(args []string) int {
	var opts LaunchOptions
	helpShown, err := launchBase().ParseArgsWithHelp(&opts, args)
	if err != nil {
		fmt.Printf("%v\n", err)
		return ExitFailure
	}
	if helpShown {
		return ExitOK
	}

	printer := NewPrinter(opts.Color)
	return c.run(context.Background(), &opts, printer)
}

// run carries the launch logic; split out so tests can inject a printer
func (c *LaunchCommand) run(ctx context.Context, opts *LaunchOptions, printer *Printer) int {
	cfg, err := launchBase().LoadConfigWithOverrides(&opts.CommonOptions)
	if err != nil {
		printer.Error("Error: %v", err)
		return ExitFailure
	}

	if opts.Timeout > 0 {
		cfg.Timeout = config.Duration(opts.Timeout)
	}

	set := newPreflightSet(cfg)
	checks := set.Checks()
	if opts.Verbose {
		checks = announceChecks(checks, printer)
	}

	if err := preflight.NewRunner(checks).Run(ctx); err != nil {
		var failure *preflight.Failure
		if errors.As(err, &failure) {
			printer.Fail("%s", failure.Message)
			if opts.Verbose && failure.Err != nil {
				printer.Error("  %v", failure.Err)
			}
		} else {
			printer.Error("Error: %v", err)
		}
		return ExitFailure
	}

	if opts.DryRun {
		printer.Info("Environment looks good. Would run: %s %s",
			set.interp.Path, cfg.GUIScriptPath())
		return ExitOK
	}

	if opts.Verbose {
		printer.Info("Launching %s with %s (Python %s)",
			cfg.GUIScript, set.interp.Name, set.version)
	}

	l := &launcher.Launcher{
		Interpreter: set.interp.Path,
		Script:      cfg.GUIScriptPath(),
		Timeout:     time.Duration(cfg.Timeout),
	}

	if _, err := l.Run(ctx); err != nil {
		printer.Fail("%s", MsgLaunchFailed)
		if opts.Verbose {
			printer.Error("  %v", err)
		}
		return ExitFailure
	}

	return ExitOK
}

// announceChecks wraps each check so a passing one prints a line,
// preserving the fail-fast order of the underlying runner
func announceChecks(checks []preflight.Check, printer *Printer) []preflight.Check {
	wrapped := make([]preflight.Check, len(checks))
	for i, check := range checks {
		run := check.Run
		name := check.Name
		wrapped[i] = preflight.Check{
			Name:    check.Name,
			Message: check.Message,
			Run: func(ctx context.Context) error {
				if err := run(ctx); err != nil {
					return err
				}
				printer.Pass("%s", name)
				return nil
			},
		}
	}
	return wrapped
}

// LaunchCommandFactory creates a new launch command instance
func LaunchCommandFactory() (cli.Command, error) {
	return &LaunchCommand{}, nil
}
