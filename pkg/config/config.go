// Package config provides configuration loading for the launcher.
//
// Configuration is strictly optional: every field has a default matching
// the stock Component Tag Checker layout, so the launcher works with no
// config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default name for the launcher configuration file
const ConfigFileName = ".tagcheck-launcher.yaml"

// Default script and module names, matching the files the launcher
// ships alongside
const (
	DefaultGUIScript     = "check_component_tags_gui.py"
	DefaultCheckerScript = "check_component_tags.py"
	DefaultGUIModule     = "tkinter"
)

// Config represents the .tagcheck-launcher.yaml structure
type Config struct {
	// ScriptDir is the directory holding the GUI and checker scripts.
	// Empty means the current working directory, like the original launcher.
	ScriptDir string `yaml:"script_dir,omitempty"`

	// GUIScript is the entry file launched to present the interface
	GUIScript string `yaml:"gui_script,omitempty"`

	// CheckerScript is the checker logic file the GUI imports
	CheckerScript string `yaml:"checker_script,omitempty"`

	// GUIModule is the Python module the GUI requires (the toolkit import)
	GUIModule string `yaml:"gui_module,omitempty"`

	// Interpreters are candidate interpreter names tried in order.
	// Empty means the built-in candidate list.
	Interpreters []string `yaml:"interpreters,omitempty"`

	// Timeout bounds the GUI process lifetime. Zero means no timeout,
	// which is the default: the launcher blocks until the GUI exits.
	Timeout Duration `yaml:"timeout,omitempty"`
}

// Duration wraps time.Duration so "30s" style values parse from YAML
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler using time.ParseDuration
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("timeout must be a duration string: %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// New returns a configuration populated with defaults
func New() *Config {
	return &Config{
		GUIScript:     DefaultGUIScript,
		CheckerScript: DefaultCheckerScript,
		GUIModule:     DefaultGUIModule,
	}
}

// LoadConfig loads the launcher configuration from file. A missing file
// is not an error: the defaults are returned unchanged.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = ConfigFileName
	}

	if !filepath.IsAbs(configPath) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = filepath.Join(cwd, configPath)
	}

	cfg := New()

	data, err := os.ReadFile(configPath) // #nosec G304 -- user-supplied config path
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the launcher cannot use
func (c *Config) Validate() error {
	if c.GUIScript == "" {
		return fmt.Errorf("gui_script must not be empty")
	}
	if c.CheckerScript == "" {
		return fmt.Errorf("checker_script must not be empty")
	}
	if c.GUIModule == "" {
		return fmt.Errorf("gui_module must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	for _, name := range c.Interpreters {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("interpreters must not contain empty entries")
		}
	}
	return nil
}

// GUIScriptPath returns the resolved path of the GUI entry file
func (c *Config) GUIScriptPath() string {
	return filepath.Join(c.ScriptDir, c.GUIScript)
}

// CheckerScriptPath returns the resolved path of the checker logic file
func (c *Config) CheckerScriptPath() string {
	return filepath.Join(c.ScriptDir, c.CheckerScript)
}
