// Package extract pulls named field assignments out of the flat block text
// produced by package source.
//
// The extractor is lexical. It does not parse HCL expressions; a field's value
// is everything between its `<field> =` prefix and the start of the next
// requested field. It never fails: text that does not look like an assignment
// is simply not reported.
package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/vk/tfmdcli/internal/model"
)

var (
	validationOpen = regexp.MustCompile(`\s?validation\s\{`)
	emptyArrayTail = regexp.MustCompile(`\[\]\s?\}\n?`)
)

type fieldHit struct {
	field string
	start int // index of the field keyword
	value int // index of the first byte after `<field> =`
}

// PullFields extracts the requested fields from one block segment such as
// ` ibm_region { type = string default = "eu-de" }`. The returned record
// always starts with `name`, followed by the fields found in the order they
// appear in the block.
//
// Values with no `{` or `[` have their double quotes removed. When breaks is
// set, composite `default` and `value` fields are passed through
// InsertLineBreaks.
func PullFields(fields []string, segment string, breaks bool) *model.Record {
	open := strings.IndexByte(segment, '{')
	if open < 0 {
		return model.NewRecord(cleanName(segment))
	}

	record := model.NewRecord(cleanName(segment[:open]))
	body := blockBody(segment[open+1:])

	hits := locate(fields, body)
	for i, hit := range hits {
		end := len(body)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		// A second field whose keyword sits inside the first one's prefix
		// leaves no room for a value.
		if hit.value > end {
			end = hit.value
		}
		value := strings.TrimRight(body[hit.value:end], " ")

		switch {
		case !strings.ContainsAny(value, "{["):
			value = strings.ReplaceAll(value, `"`, "")
		case breaks && (hit.field == model.FieldDefault || hit.field == model.FieldValue):
			value = InsertLineBreaks(value)
		}
		record.Set(hit.field, value)
	}
	return record
}

// Records runs PullFields over every segment that is not blank, keeping the
// relative order of the segments.
func Records(fields []string, segments []string, breaks bool) []*model.Record {
	records := make([]*model.Record, 0, len(segments))
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		records = append(records, PullFields(fields, segment, breaks))
	}
	return records
}

func cleanName(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '"' || isSpace(r) {
			return -1
		}
		return r
	}, s)
}

// blockBody returns the assignments of a block: the text after its opening
// brace without the closing brace and without validation sub-blocks.
func blockBody(rest string) string {
	body := strings.TrimRightFunc(rest, isSpace)
	body = strings.TrimSuffix(body, "}")
	body = removeValidation(body)
	if strings.Count(body, "}") > strings.Count(body, "{") {
		body = emptyArrayTail.ReplaceAllString(body, "[]")
	}
	return strings.Trim(body, " ")
}

// locate finds the first assignment of each requested field and returns the
// hits sorted by position. A field whose keyword occurs without an assignment
// is skipped.
func locate(fields []string, body string) []fieldHit {
	var hits []fieldHit
	for _, field := range fields {
		if field == model.FieldName || field == "" || !strings.Contains(body, field) {
			continue
		}
		re := regexp.MustCompile(regexp.QuoteMeta(field) + `\s?=\s?`)
		loc := re.FindStringIndex(body)
		if loc == nil {
			continue
		}
		hits = append(hits, fieldHit{field: field, start: loc[0], value: loc[1]})
	}
	slices.SortStableFunc(hits, func(a, b fieldHit) int {
		return a.start - b.start
	})
	return hits
}

// removeValidation cuts every `validation { ... }` sub-block out of body. The
// closing brace is found by counting braces outside string literals. When the
// braces never balance, everything up to the last `}` is removed instead.
func removeValidation(body string) string {
	for {
		loc := validationOpen.FindStringIndex(body)
		if loc == nil {
			return body
		}
		end := matchingBrace(body, loc[1]-1)
		if end < 0 {
			last := strings.LastIndexByte(body, '}')
			if last < loc[1]-1 {
				return body
			}
			end = last
		}
		body = body[:loc[0]] + body[end+1:]
	}
}

// matchingBrace returns the index of the brace closing the one at open, or -1.
func matchingBrace(s string, open int) int {
	depth := 0
	inString := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
