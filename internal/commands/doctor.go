package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/tagcheck-launcher/pkg/preflight"
)

// DoctorCommand handles the doctor command functionality
type DoctorCommand struct{}

// DoctorOptions holds command-line options for the doctor command
type DoctorOptions struct {
	CommonOptions
}

// doctorBase describes the doctor command for parsing and help output
func doctorBase() *BaseCommand {
	return &BaseCommand{
		Name:        "doctor",
		Description: "Check launcher environment health.",
		Examples: []Example{
			{Command: "tagcheck-launcher doctor", Description: "Check environment health"},
			{Command: "tagcheck-launcher doctor --verbose", Description: "Show detailed diagnostic information"},
			{Command: "tagcheck-launcher doctor --dir tools/tagcheck", Description: "Check scripts in another directory"},
		},
		Notes: []string{
			"Unlike launch, doctor runs every check even after a failure,",
			"so all problems are reported at once.",
			"",
			"Exit codes:",
			"  0: No problems found",
			"  1: Problems found",
			"  2: Error running doctor command",
		},
	}
}

// Help returns the help text for the doctor command
func (c *DoctorCommand) Help() string {
	var opts DoctorOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	return doctorBase().GenerateHelp(parser)
}

// Synopsis returns a short description of the doctor command
func (c *DoctorCommand) Synopsis() string {
	return "Check launcher environment health"
}

// Run executes the doctor command with the given arguments
func (c *DoctorCommand) Run(args []string) int {
	var opts DoctorOptions
	helpShown, err := doctorBase().ParseArgsWithHelp(&opts, args)
	if err != nil {
		fmt.Printf("%v\n", err)
		return ExitError
	}
	if helpShown {
		return ExitOK
	}

	printer := NewPrinter(opts.Color)
	return c.run(context.Background(), &opts, printer)
}

func (c *DoctorCommand) run(ctx context.Context, opts *DoctorOptions, printer *Printer) int {
	cfg, err := doctorBase().LoadConfigWithOverrides(&opts.CommonOptions)
	if err != nil {
		printer.Error("Error: %v", err)
		return ExitError
	}

	printer.Info("Checking Component Tag Checker environment...")
	printer.Info("")

	set := newPreflightSet(cfg)
	results := preflight.NewRunner(set.Checks()).RunAll(ctx)

	problems := 0
	for _, result := range results {
		switch {
		case result.Passed():
			printer.Pass("%s", c.describePass(result, set, opts.Verbose))
		case errors.Is(result.Err, errInterpreterUnresolved):
			// Dependent check: without an interpreter there is nothing
			// to probe, and "tkinter is not available" would mislead
			printer.Warn("%s skipped: no interpreter to probe", result.Check.Name)
		default:
			problems++
			printer.Fail("%s", result.Check.Message)
			if opts.Verbose {
				printer.Error("    %v", result.Err)
			}
		}
	}

	warnings := c.collectWarnings(set)
	if len(warnings) > 0 {
		printer.Info("")
		for _, warning := range warnings {
			printer.Warn("%s", warning)
		}
	}

	printer.Info("")
	if problems > 0 {
		printer.Error("%d problem(s) found.", problems)
		return ExitFailure
	}
	printer.Info("All checks passed. Run 'tagcheck-launcher' to start the GUI.")
	return ExitOK
}

// describePass renders a passed check, with extra detail in verbose mode
func (c *DoctorCommand) describePass(result preflight.Result, set *preflightSet, verbose bool) string {
	if !verbose {
		return result.Check.Name
	}
	if result.Check.Name == CheckInterpreter && set.interp != nil {
		return fmt.Sprintf("%s (%s, Python %s)", result.Check.Name, set.interp.Path, set.version)
	}
	return result.Check.Name
}

// collectWarnings reports conditions that do not block a launch but are
// worth surfacing
func (c *DoctorCommand) collectWarnings(set *preflightSet) []string {
	var warnings []string

	if set.interp != nil && set.version.Major < 3 {
		warnings = append(warnings,
			fmt.Sprintf("Python %s is end-of-life; the tag checker targets Python 3", set.version))
	}

	if set.cfg.ScriptDir != "" {
		if info, err := os.Stat(set.cfg.ScriptDir); err != nil || !info.IsDir() {
			warnings = append(warnings,
				fmt.Sprintf("script directory %s is not a directory", set.cfg.ScriptDir))
		}
	}

	return warnings
}

// DoctorCommandFactory creates a new doctor command instance
func DoctorCommandFactory() (cli.Command, error) {
	return &DoctorCommand{}, nil
}
