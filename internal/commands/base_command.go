package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/blairham/tagcheck-launcher/pkg/config"
)

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Examples    []Example
	Notes       []string
}

// CommonOptions defines options shared across commands
type CommonOptions struct {
	Color   string `long:"color"   description:"Whether to use color in output" choice:"auto" choice:"always" choice:"never" default:"auto"`
	Config  string `long:"config"  description:"Path to config file"                                                         default:".tagcheck-launcher.yaml" short:"c"`
	Dir     string `long:"dir"     description:"Directory holding the checker scripts"                                                                         short:"d"`
	Help    bool   `long:"help"    description:"Show this help message"                                                                                        short:"h"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"                                                                                         short:"v"`
}

// ParseArgsWithHelp parses arguments and handles help display. It
// reports whether help was shown so callers can exit cleanly.
func (bc *BaseCommand) ParseArgsWithHelp(opts any, args []string) (bool, error) {
	parser := flags.NewParser(opts, flags.Default)
	parser.Usage = OptionsUsage

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return true, nil // Help was shown, exit gracefully
		}
		return false, fmt.Errorf("error parsing arguments: %w", err)
	}

	return false, nil
}

// GenerateHelp creates standardized help output
func (bc *BaseCommand) GenerateHelp(parser *flags.Parser) string {
	formatter := &HelpFormatter{
		Command:     bc.Name,
		Description: bc.Description,
		Examples:    bc.Examples,
		Notes:       bc.Notes,
	}
	return formatter.FormatHelp(parser)
}

// LoadConfigWithOverrides loads the launcher config and applies
// command-line overrides on top of it
func (bc *BaseCommand) LoadConfigWithOverrides(opts *CommonOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.Config)
	if err != nil {
		return nil, err
	}
	if opts.Dir != "" {
		cfg.ScriptDir = opts.Dir
	}
	return cfg, nil
}
