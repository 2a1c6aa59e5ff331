package app

import (
	"github.com/pkg/errors"
)

// Mode selects the artifact a run produces.
type Mode string

const (
	// ModeTable renders a Markdown table of the file's blocks.
	ModeTable Mode = "table"
	// ModeModule renders an example module usage block.
	ModeModule Mode = "module"
	// ModeTfvars renders an example tfvars file.
	ModeTfvars Mode = "tfvars"
	// ModeYAML exports the extracted blocks as YAML.
	ModeYAML Mode = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SourcePath string // .tf file
	Mode       Mode

	// Table and YAML options.
	Breaks      bool
	IncludeOnly []string
	AddColumns  []string

	// Module options.
	ModuleName   string
	ModuleSource string

	// Tfvars options.
	IgnoreDefaults bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SourcePath == "" {
		return nil, errors.New("No file specified")
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeTable
	}
	switch cfg.Mode {
	case ModeTable, ModeModule, ModeTfvars, ModeYAML:
	default:
		return nil, errors.Errorf("unknown mode %q", cfg.Mode)
	}
	if cfg.Mode == ModeModule && (cfg.ModuleName == "" || cfg.ModuleSource == "") {
		return nil, errors.New("module mode needs both a module name and a source")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return &cfg, nil
}
