// Package docgen is the entry point of the documentation pipeline. Each
// function takes the raw text of a Terraform file and returns a finished
// artifact: a Markdown table, an example module block, or a tfvars file.
package docgen

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/vk/tfmdcli/internal/extract"
	"github.com/vk/tfmdcli/internal/model"
	"github.com/vk/tfmdcli/internal/source"
	"github.com/vk/tfmdcli/internal/table"
	"github.com/vk/tfmdcli/internal/tfvars"
)

// TableOptions controls RenderTable.
type TableOptions struct {
	// Fields is the field order used for extraction and width calculation.
	// Empty means the canonical order of the block kind.
	Fields []string
	// Columns lists the columns to print. Empty means Fields.
	Columns []string
	// Breaks inserts <br> markers into composite default and value fields.
	Breaks bool
	// ExtraColumns are appended as empty columns.
	ExtraColumns []string
}

// ParseRecords extracts one record per block of the given kind.
func ParseRecords(kind model.BlockKind, src string, fields []string, breaks bool) []*model.Record {
	return extract.Records(fields, source.Split(kind, src), breaks)
}

// RenderTable renders every block of the given kind as a Markdown table.
func RenderTable(kind model.BlockKind, src string, opts TableOptions) string {
	fields := opts.Fields
	if len(fields) == 0 {
		fields = model.FieldOrder(kind)
	}
	columns := opts.Columns
	if len(columns) == 0 {
		columns = fields
	}
	fieldOrder := concat(fields, opts.ExtraColumns)
	columns = concat(columns, opts.ExtraColumns)

	records := ParseRecords(kind, src, fieldOrder, opts.Breaks)
	return table.Render(columns, table.Widths(records, fieldOrder), records)
}

// RenderExampleUsageBlock renders a fenced `module` block that passes every
// variable of src through to the module at sourcePath.
func RenderExampleUsageBlock(src, instanceName, sourcePath string) string {
	records := ParseRecords(model.KindVariable, src, []string{model.FieldName}, false)

	width := runewidth.StringWidth("source")
	for _, r := range records {
		width = max(width, runewidth.StringWidth(r.Name()))
	}

	var b strings.Builder
	b.WriteString("```terraform\n")
	b.WriteString("module " + instanceName + " {\n")
	b.WriteString("  " + table.Pad("source", width, ' ') + ` = "` + sourcePath + "\"\n")
	for _, r := range records {
		b.WriteString("  " + table.Pad(r.Name(), width, ' ') + " = var." + r.Name() + "\n")
	}
	b.WriteString("}\n```")
	return b.String()
}

// RenderDefaultsFile renders a tfvars file with one entry per variable,
// joined by newlines.
func RenderDefaultsFile(src string, ignoreDefaults bool) (string, error) {
	records := ParseRecords(model.KindVariable, src, model.TfvarsFields(), false)

	entries := make([]string, 0, len(records))
	for _, r := range records {
		entry, err := tfvars.Example(r, ignoreDefaults)
		if err != nil {
			return "", errors.Wrap(err, "failed to build tfvars entry")
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, "\n"), nil
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
