package commands

// Command usage pattern shared by all commands
const OptionsUsage = "[OPTIONS]"

// Fixed user-facing diagnostics. Every launch-path failure prints one of
// these and exits 1; the causes are deliberately not distinguished at
// the exit-code level.
const (
	MsgInterpreterMissing = "Python is not installed or not on the PATH."
	MsgLaunchFailed       = "The Component Tag Checker exited with an error."

	// Templates taking the configured module or script name
	MsgGUIModuleMissingFmt = "Python is installed but %s is not available."
	MsgScriptMissingFmt    = "%s was not found."
)

// Exit statuses for the launch path. Diagnostic commands additionally
// use 2 for internal errors, in the usual doctor convention.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitError   = 2
)
