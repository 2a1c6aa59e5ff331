package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/vk/tfmdcli/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
// color enables styled help output.
func Parse(args []string, output io.Writer, color bool) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tfmdcli", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	opts := options{}
	alias(flagSet, &opts.breaks, "b", "breaks", "Add line breaks to default and value fields.")
	alias(flagSet, &opts.includeOnly, "o", "include-only", "Comma separated list of columns to print.")
	alias(flagSet, &opts.addColumns, "a", "add-columns", "Comma separated list of empty columns to add.")
	alias(flagSet, &opts.module, "m", "module", "Module name for an example module block.")
	alias(flagSet, &opts.source, "s", "source", "Source path for an example module block.")
	alias(flagSet, &opts.tfvars, "t", "tfvars", "Create a tfvars file.")
	alias(flagSet, &opts.ignoreDefaults, "i", "ignore-defaults", "Ignore defaults in the tfvars file.")
	alias(flagSet, &opts.yaml, "y", "yaml", "Export blocks as YAML.")
	flagSet.BoolVar(&opts.help, "h", false, "Show help.")
	flagSet.BoolVar(&opts.help, "help", false, "Show help.")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	paths, err := parseInterspersed(flagSet, args)
	if err != nil {
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	if opts.help {
		fmt.Fprint(output, Help(color))
		return nil, true, nil
	}

	if len(paths) == 0 {
		return nil, false, usageError(errors.New("No file specified"))
	}
	opts.paths = paths
	opts.logLevel = strings.ToLower(opts.logLevel)
	opts.logFormat = strings.ToLower(opts.logFormat)
	if err := optionsValidator.Validate(opts); err != nil {
		return nil, false, usageError(err)
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SourcePath:     paths[0],
		Mode:           modeOf(opts),
		Breaks:         opts.breaks.value,
		IncludeOnly:    splitList(opts.includeOnly.value),
		AddColumns:     splitList(opts.addColumns.value),
		ModuleName:     opts.module.value,
		ModuleSource:   opts.source.value,
		IgnoreDefaults: opts.ignoreDefaults.value,
		LogFormat:      opts.logFormat,
		LogLevel:       opts.logLevel,
	})
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func modeOf(opts options) app.Mode {
	switch {
	case opts.module.set:
		return app.ModeModule
	case opts.tfvars.value:
		return app.ModeTfvars
	case opts.yaml.value:
		return app.ModeYAML
	default:
		return app.ModeTable
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
