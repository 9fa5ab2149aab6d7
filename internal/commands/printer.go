package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color definitions for check output
var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
)

// Printer writes check results and diagnostics to the console
type Printer struct {
	out io.Writer
	err io.Writer
}

// NewPrinter creates a printer honoring the --color mode
func NewPrinter(colorMode string) *Printer {
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		// "auto": fatih/color already disables itself on non-terminals
	}
	return &Printer{out: os.Stdout, err: os.Stderr}
}

// SetOutput redirects the printer, used by tests
func (p *Printer) SetOutput(out, err io.Writer) {
	p.out = out
	p.err = err
}

// Pass prints a passed check line
func (p *Printer) Pass(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", passColor.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Fail prints a failed check line to stderr
func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintf(p.err, "%s %s\n", failColor.Sprint("✗"), fmt.Sprintf(format, args...))
}

// Warn prints a warning line
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", warnColor.Sprint("!"), fmt.Sprintf(format, args...))
}

// Info prints an unstyled line
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error prints an unstyled line to stderr
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.err, format+"\n", args...)
}
