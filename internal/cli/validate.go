package cli

import (
	"regexp"
	"slices"
	"strings"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
)

var (
	columnListPattern = regexp.MustCompile(`^[a-z_]+(,[a-z_]+)*$`)
	moduleNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	sourcePathPattern = regexp.MustCompile(`^[A-Za-z0-9:_/.-]+$`)
)

// options is the raw result of flag parsing, before it becomes an app.Config.
type options struct {
	paths          []string
	breaks         onceBool
	includeOnly    onceString
	addColumns     onceString
	module         onceString
	source         onceString
	tfvars         onceBool
	ignoreDefaults onceBool
	yaml           onceBool
	logLevel       string
	logFormat      string
	help           bool
}

// modeFlags lists the short names of the output flags that were passed.
func (o options) modeFlags() []string {
	var passed []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"-b", o.breaks.set},
		{"-o", o.includeOnly.set},
		{"-a", o.addColumns.set},
		{"-m", o.module.set},
		{"-s", o.source.set},
		{"-t", o.tfvars.set},
		{"-i", o.ignoreDefaults.set},
		{"-y", o.yaml.set},
	} {
		if f.set {
			passed = append(passed, f.name)
		}
	}
	return passed
}

var optionsValidator = govy.New(
	govy.For(func(o options) []string { return o.paths }).
		WithName("file_path").
		Rules(govy.NewRule(func(paths []string) error {
			if len(paths) > 1 {
				return errors.Errorf("Expected a single file path, got [%s]", strings.Join(paths, ","))
			}
			return nil
		})),
	govy.For(func(o options) string { return o.includeOnly.value }).
		WithName("include-only").
		When(func(o options) bool { return o.includeOnly.set }, govy.WhenDescription("-o is passed")).
		Rules(columnList("-o")),
	govy.For(func(o options) string { return o.addColumns.value }).
		WithName("add-columns").
		When(func(o options) bool { return o.addColumns.set }, govy.WhenDescription("-a is passed")).
		Rules(columnList("-a")),
	govy.For(func(o options) string { return o.module.value }).
		WithName("module").
		When(func(o options) bool { return o.module.set }, govy.WhenDescription("-m is passed")).
		Rules(govy.NewRule(func(name string) error {
			if !moduleNamePattern.MatchString(name) {
				return errors.Errorf("Module names must match the regular expression /%s/", moduleNamePattern)
			}
			return nil
		})),
	govy.For(func(o options) string { return o.source.value }).
		WithName("source").
		When(func(o options) bool { return o.source.set }, govy.WhenDescription("-s is passed")).
		Rules(govy.NewRule(func(path string) error {
			if !sourcePathPattern.MatchString(path) {
				return errors.Errorf("Source must be a valid source path. Got %s", path)
			}
			return nil
		})),
	govy.For(func(o options) []string { return o.modeFlags() }).
		WithName("flags").
		Rules(govy.NewRule(exclusiveModes)),
	govy.For(func(o options) string { return o.logLevel }).
		WithName("log-level").
		Rules(rules.OneOf("debug", "info", "warn", "error")),
	govy.For(func(o options) string { return o.logFormat }).
		WithName("log-format").
		Rules(rules.OneOf("text", "json")),
).WithName("tfmdcli flags")

func columnList(flagName string) govy.Rule[string] {
	return govy.NewRule(func(v string) error {
		if !columnListPattern.MatchString(v) {
			return errors.Errorf("Expected %s to be a comma separated list of lower case strings, got %s", flagName, v)
		}
		return nil
	})
}

// exclusiveModes enforces that -m and -s come together and alone, and that
// -t comes alone or with -i.
func exclusiveModes(passed []string) error {
	var group, required []string
	switch {
	case slices.Contains(passed, "-m") || slices.Contains(passed, "-s"):
		group, required = []string{"-m", "-s"}, []string{"-m", "-s"}
	case slices.Contains(passed, "-t") || slices.Contains(passed, "-i"):
		group, required = []string{"-t", "-i"}, []string{"-t"}
	default:
		return nil
	}

	for _, p := range passed {
		if !slices.Contains(group, p) {
			return errors.Errorf("Expected only [%s] passed, got [%s].",
				strings.Join(group, ","), strings.Join(passed, ","))
		}
	}
	for _, r := range required {
		if !slices.Contains(passed, r) {
			return errors.Errorf("Expected %s flag to be passed with %s", passed[0], r)
		}
	}
	return nil
}
