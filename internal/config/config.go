package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the optional per-project configuration read from
// treekeep.yaml in the working directory. Every field has a CLI-level
// default; the file only overrides.
type ProjectConfig struct {
	// Store is the directory holding the persisted structure document.
	Store string `yaml:"store,omitempty"`

	// ReportOutput is where the report command writes its Markdown file.
	ReportOutput string `yaml:"report_output,omitempty"`

	// ContentRoot is prepended to catalog paths when the report generator
	// reads file contents off disk.
	ContentRoot string `yaml:"content_root,omitempty"`

	// Verbose enables diagnostic logging for all commands.
	Verbose bool `yaml:"verbose,omitempty"`
}

// ConfigFileName is the well-known name of the project config file.
const ConfigFileName = "treekeep.yaml"

// Load reads treekeep.yaml from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
