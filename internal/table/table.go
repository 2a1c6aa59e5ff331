// Package table renders extracted records as a fixed-width, pipe-delimited
// Markdown table.
package table

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/vk/tfmdcli/internal/model"
)

const separator = " | "

// Header turns a field name into a column title: `depends_on` becomes
// `Depends On`.
func Header(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Widths returns the display width of every column: the longest value seen
// under a key, never less than the key itself. Fields listed in order that no
// record carries get the width of their name.
func Widths(records []*model.Record, order []string) map[string]int {
	widths := make(map[string]int)
	for _, r := range records {
		for _, f := range r.Fields() {
			w := max(runewidth.StringWidth(f.Key), runewidth.StringWidth(f.Value))
			if w > widths[f.Key] {
				widths[f.Key] = w
			}
		}
	}
	for _, field := range order {
		if _, ok := widths[field]; !ok {
			widths[field] = runewidth.StringWidth(field)
		}
	}
	return widths
}

// Pad fits s to width display cells. Shorter text is filled on the right with
// fill; longer text is cut from the end.
func Pad(s string, width int, fill rune) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "")
	}
	return s + strings.Repeat(string(fill), width-w)
}

// Render builds the table for the given columns. The output has a header row,
// a dash separator row and one row per record, joined by newlines with no
// trailing newline. The last column is never padded.
func Render(columns []string, widths map[string]int, records []*model.Record) string {
	lines := make([]string, 0, len(records)+2)
	lines = append(lines,
		row(columns, widths, Header),
		separatorRow(columns, widths),
	)
	for _, r := range records {
		lines = append(lines, row(columns, widths, r.Value))
	}
	return strings.Join(lines, "\n")
}

func row(columns []string, widths map[string]int, cell func(string) string) string {
	var b strings.Builder
	for i, col := range columns {
		value := cell(col)
		if i == len(columns)-1 {
			b.WriteString(value)
			break
		}
		b.WriteString(Pad(value, width(widths, col), ' '))
		b.WriteString(separator)
	}
	return b.String()
}

func separatorRow(columns []string, widths map[string]int) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = Pad("", width(widths, col), '-')
	}
	return strings.Join(cells, separator)
}

func width(widths map[string]int, col string) int {
	if w, ok := widths[col]; ok {
		return w
	}
	return runewidth.StringWidth(col)
}
