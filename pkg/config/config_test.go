package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "check_component_tags_gui.py", cfg.GUIScript)
	assert.Equal(t, "check_component_tags.py", cfg.CheckerScript)
	assert.Equal(t, "tkinter", cfg.GUIModule)
	assert.Empty(t, cfg.ScriptDir)
	assert.Empty(t, cfg.Interpreters)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoadConfig_EmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "   \n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
script_dir: /opt/tagcheck
gui_script: custom_gui.py
interpreters:
  - python3.12
  - python3
timeout: 30s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/tagcheck", cfg.ScriptDir)
	assert.Equal(t, "custom_gui.py", cfg.GUIScript)
	// Unset fields keep their defaults
	assert.Equal(t, "check_component_tags.py", cfg.CheckerScript)
	assert.Equal(t, "tkinter", cfg.GUIModule)
	assert.Equal(t, []string{"python3.12", "python3"}, cfg.Interpreters)
	assert.Equal(t, Duration(30*time.Second), cfg.Timeout)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "interpreters: [unclosed\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "empty gui script", content: `gui_script: ""` + "\n" + `checker_script: x.py`, wantErr: "gui_script"},
		{name: "negative timeout", content: "timeout: -5s", wantErr: "timeout"},
		{name: "blank interpreter entry", content: "interpreters: ['python3', ' ']", wantErr: "interpreters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ScriptPaths(t *testing.T) {
	cfg := New()
	assert.Equal(t, "check_component_tags_gui.py", cfg.GUIScriptPath())
	assert.Equal(t, "check_component_tags.py", cfg.CheckerScriptPath())

	cfg.ScriptDir = filepath.Join("tools", "tagcheck")
	assert.Equal(t, filepath.Join("tools", "tagcheck", "check_component_tags_gui.py"), cfg.GUIScriptPath())
	assert.Equal(t, filepath.Join("tools", "tagcheck", "check_component_tags.py"), cfg.CheckerScriptPath())
}
