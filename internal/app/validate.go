package app

import (
	"strings"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/pkg/errors"

	"github.com/vk/tfmdcli/internal/model"
)

// kindValidator checks the options that depend on which block kind the
// source file turned out to hold.
func kindValidator(kind model.BlockKind) govy.Validator[Config] {
	fields := model.FieldOrder(kind)

	return govy.New(
		govy.For(func(c Config) Mode { return c.Mode }).
			WithName("mode").
			Rules(govy.NewRule(func(m Mode) error {
				if kind != model.KindVariable && (m == ModeModule || m == ModeTfvars) {
					return errors.Errorf("%s output can only be used with variable files. Got %s.", m, kind)
				}
				return nil
			})),
		govy.For(func(c Config) []string { return c.IncludeOnly }).
			WithName("include-only").
			Rules(govy.NewRule(func(keys []string) error {
				for _, k := range keys {
					if !model.HasField(kind, k) {
						return errors.Errorf("Keys for %s can be only [%s]. Got [%s].",
							kind, strings.Join(fields, ","), strings.Join(keys, ","))
					}
				}
				return nil
			})),
		govy.For(func(c Config) []string { return c.AddColumns }).
			WithName("add-columns").
			Rules(govy.NewRule(func(cols []string) error {
				for _, c := range cols {
					if model.HasField(kind, c) {
						return errors.Errorf("Only columns that do not share a name with existing fields can be added. Existing fields are [%s].",
							strings.Join(fields, ","))
					}
				}
				return nil
			})),
	).WithName("tfmdcli options")
}
