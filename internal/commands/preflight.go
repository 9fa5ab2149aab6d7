package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/blairham/tagcheck-launcher/pkg/config"
	"github.com/blairham/tagcheck-launcher/pkg/preflight"
	"github.com/blairham/tagcheck-launcher/pkg/python"
)

// errInterpreterUnresolved marks checks that cannot run because the
// interpreter check before them already failed
var errInterpreterUnresolved = errors.New("no interpreter resolved")

// Check names, used in diagnostics and tests
const (
	CheckInterpreter = "interpreter"
	CheckGUIModule   = "gui module"
	CheckGUIScript   = "entry file"
	CheckChecker     = "checker file"
)

// preflightSet wires the four launch preconditions together. The
// interpreter resolved by the first check is reused by the module check
// and by the eventual launch.
type preflightSet struct {
	cfg     *config.Config
	interp  *python.Interpreter
	version python.Version
}

func newPreflightSet(cfg *config.Config) *preflightSet {
	return &preflightSet{cfg: cfg}
}

// Checks returns the launch preconditions in the order the original
// launcher performs them: interpreter, toolkit module, entry file,
// checker logic file.
func (p *preflightSet) Checks() []preflight.Check {
	return []preflight.Check{
		{
			Name:    CheckInterpreter,
			Message: MsgInterpreterMissing,
			Run:     p.checkInterpreter,
		},
		{
			Name:    CheckGUIModule,
			Message: fmt.Sprintf(MsgGUIModuleMissingFmt, p.cfg.GUIModule),
			Run:     p.checkGUIModule,
		},
		preflight.FileExists(
			CheckGUIScript,
			fmt.Sprintf(MsgScriptMissingFmt, p.cfg.GUIScript),
			p.cfg.GUIScriptPath(),
		),
		preflight.FileExists(
			CheckChecker,
			fmt.Sprintf(MsgScriptMissingFmt, p.cfg.CheckerScript),
			p.cfg.CheckerScriptPath(),
		),
	}
}

func (p *preflightSet) checkInterpreter(ctx context.Context) error {
	interp, err := python.Find(p.cfg.Interpreters)
	if err != nil {
		return err
	}

	version, err := interp.Probe(ctx)
	if err != nil {
		return err
	}

	p.interp = interp
	p.version = version
	return nil
}

func (p *preflightSet) checkGUIModule(ctx context.Context) error {
	if p.interp == nil {
		return errInterpreterUnresolved
	}
	return p.interp.HasModule(ctx, p.cfg.GUIModule)
}
