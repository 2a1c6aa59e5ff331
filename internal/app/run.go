package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/vk/tfmdcli/internal/ctxlog"
	"github.com/vk/tfmdcli/internal/docgen"
	"github.com/vk/tfmdcli/internal/fsutil"
	"github.com/vk/tfmdcli/internal/hcl"
	"github.com/vk/tfmdcli/internal/model"
)

// Run reads the configured file, checks it, renders the artifact for the
// configured mode and writes it to the app's output followed by a newline.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.SourcePath, "mode", a.config.Mode)

	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := fsutil.ReadSource(a.config.SourcePath)
	if err != nil {
		return err
	}
	ctxlog.Stage(ctx, "read").Debug("Source file read.", "bytes", len(src))

	kind, err := hcl.Classify(a.config.SourcePath, []byte(src))
	if err != nil {
		return err
	}
	ctxlog.Stage(ctx, "classify").Debug("Source file classified.", "kind", kind)

	if err := kindValidator(kind).Validate(*a.config); err != nil {
		return err
	}

	artifact, err := a.render(ctx, kind, src)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(a.outW, artifact); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) render(ctx context.Context, kind model.BlockKind, src string) (string, error) {
	cfg := a.config
	logger := ctxlog.Stage(ctx, "render")

	switch cfg.Mode {
	case ModeModule:
		logger.Debug("Rendering example module block.", "module", cfg.ModuleName, "source", cfg.ModuleSource)
		return docgen.RenderExampleUsageBlock(src, cfg.ModuleName, cfg.ModuleSource), nil
	case ModeTfvars:
		logger.Debug("Rendering tfvars file.", "ignore_defaults", cfg.IgnoreDefaults)
		return docgen.RenderDefaultsFile(src, cfg.IgnoreDefaults)
	case ModeYAML:
		fields := cfg.IncludeOnly
		if len(fields) == 0 {
			fields = model.FieldOrder(kind)
		}
		records := docgen.ParseRecords(kind, src, slices.Concat(fields, cfg.AddColumns), cfg.Breaks)
		logger.Debug("Exporting records as YAML.", "records", len(records))
		out, err := docgen.ExportYAML(records)
		return strings.TrimSuffix(out, "\n"), err
	default:
		logger.Debug("Rendering Markdown table.", "kind", kind, "breaks", cfg.Breaks)
		return docgen.RenderTable(kind, src, docgen.TableOptions{
			Columns:      cfg.IncludeOnly,
			Breaks:       cfg.Breaks,
			ExtraColumns: cfg.AddColumns,
		}), nil
	}
}
