// Package main provides the tagcheck-launcher command-line tool.
// It verifies the environment the Component Tag Checker GUI needs and
// then starts it, replacing the old run_tag_checker.bat launcher.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/blairham/tagcheck-launcher/internal/commands"
)

// Version information set by GoReleaser
var (
	version = "dev"
	commit  = "none"    //nolint:unused // Set by GoReleaser
	date    = "unknown" //nolint:unused // Set by GoReleaser
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Bare invocation behaves like the original batch launcher
	if len(args) == 0 {
		args = []string{"launch"}
	}

	c := cli.NewCLI("tagcheck-launcher", version)
	c.Args = args
	c.HelpFunc = customHelpFunc
	c.Commands = map[string]cli.CommandFactory{
		"launch": commands.LaunchCommandFactory,
		"doctor": commands.DoctorCommandFactory,
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return exitStatus
}

// customHelpFunc lists the commands with the launch-by-default behavior
// spelled out
func customHelpFunc(_ map[string]cli.CommandFactory) string {
	var help strings.Builder

	help.WriteString("usage: tagcheck-launcher [--version] [--help] [launch|doctor] [OPTIONS]\n\n")
	help.WriteString("Launcher for the Component Tag Checker GUI.\n\n")
	help.WriteString("Running with no arguments checks the environment and starts the GUI.\n\n")
	help.WriteString("commands:\n")
	help.WriteString("    launch    Check the environment and start the tag checker GUI (default)\n")
	help.WriteString("    doctor    Check launcher environment health\n")

	return help.String()
}
