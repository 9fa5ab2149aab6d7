// Package python locates a usable Python interpreter and probes its capabilities.
package python

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

const (
	// VersionFlag is the flag used to probe an interpreter for its version
	VersionFlag = "--version"

	windowsOS = "windows"
)

// DefaultCandidates returns the interpreter names tried in order when no
// explicit candidates are configured. The Windows launcher shim "py" is
// only meaningful on Windows.
func DefaultCandidates() []string {
	candidates := []string{"python3", "python"}
	if runtime.GOOS == windowsOS {
		candidates = append(candidates, "py")
	}
	return candidates
}

// Interpreter describes a resolved Python executable
type Interpreter struct {
	// Name is the candidate name the interpreter was found under (e.g. "python3")
	Name string
	// Path is the absolute path resolved via the search path
	Path string
}

// Version is a parsed interpreter version
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the dotted form of the version
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionPattern matches the output of "python --version", which is
// "Python X.Y.Z" on modern interpreters (stderr on Python 2)
var versionPattern = regexp.MustCompile(`Python (\d+)\.(\d+)\.(\d+)`)

// modulePattern restricts module names passed to HasModule to dotted
// Python identifiers, since the name is interpolated into a -c program
var modulePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Find returns the first candidate resolvable on the search path.
// With an empty candidate list the default candidates are tried.
func Find(candidates []string) (*Interpreter, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}

	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		return &Interpreter{Name: name, Path: path}, nil
	}

	return nil, fmt.Errorf("no python interpreter found (tried: %s)", strings.Join(candidates, ", "))
}

// Probe runs the interpreter with its version flag and parses the result.
// A failure here means the resolved executable is not a working Python.
func (i *Interpreter) Probe(ctx context.Context) (Version, error) {
	cmd := exec.CommandContext(ctx, i.Path, VersionFlag)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Version{}, fmt.Errorf("running %s %s: %w", i.Name, VersionFlag, err)
	}

	version, err := ParseVersion(string(output))
	if err != nil {
		return Version{}, fmt.Errorf("probing %s: %w", i.Name, err)
	}

	return version, nil
}

// HasModule reports whether the interpreter can import the named module.
// The import is attempted in a child process so a broken module cannot
// affect the launcher itself.
func (i *Interpreter) HasModule(ctx context.Context, module string) error {
	if !modulePattern.MatchString(module) {
		return fmt.Errorf("invalid module name: %q", module)
	}

	cmd := exec.CommandContext(ctx, i.Path, "-c", "import "+module)
	if output, err := cmd.CombinedOutput(); err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("importing %s with %s: %s: %w", module, i.Name, lastLine(detail), err)
		}
		return fmt.Errorf("importing %s with %s: %w", module, i.Name, err)
	}

	return nil
}

// ParseVersion extracts a Version from "python --version" output
func ParseVersion(output string) (Version, error) {
	matches := versionPattern.FindStringSubmatch(output)
	if matches == nil {
		return Version{}, fmt.Errorf("unrecognized version output: %q", strings.TrimSpace(output))
	}

	// The pattern guarantees digit-only submatches
	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch, _ := strconv.Atoi(matches[3])

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// lastLine returns the final non-empty line of a block of output. Python
// tracebacks put the actual error last.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
