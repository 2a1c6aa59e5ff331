package extract

import (
	"regexp"
	"strings"
)

// LineBreak is the marker written in place of a whitespace character.
const LineBreak = "<br>"

// seam describes a position in composite literal text where a line break
// reads well. after must match the text starting right behind the whitespace
// character. behind is matched against the text in front of it read
// backwards, so a `^`-anchored pattern only scans as far back as its context
// reaches. A nil pattern matches anything.
type seam struct {
	behind *regexp.Regexp
	after  *regexp.Regexp
}

var seams = []seam{
	// [ [
	{behind: regexp.MustCompile(`^\[`), after: regexp.MustCompile(`^\[`)},
	// [ "
	{behind: regexp.MustCompile(`^\[`), after: regexp.MustCompile(`^"`)},
	// key = value, or any of { ] } , and whitespace
	{behind: regexp.MustCompile(`^(?:[A-z0-9"/.-]+\s=\s?\w|[{\]\s},])`)},
	// ] key = , ]} and ],
	{after: regexp.MustCompile(`^(?:\]\s\w+\s?=\s?|\]\s?[},])`)},
	// [ {
	{behind: regexp.MustCompile(`^\[`), after: regexp.MustCompile(`^\{`)},
	// " ]
	{behind: regexp.MustCompile(`^"`), after: regexp.MustCompile(`^\]`)},
	// ternary
	{after: regexp.MustCompile(`^\?`)},
	// [ for x in y:
	{behind: regexp.MustCompile(`^[\[{]`), after: regexp.MustCompile(`^for[\s\w]+in[\s\w.]+:`)},
	// ? a : b
	{behind: regexp.MustCompile(`^[.\d\s\w\[\]]+\?`), after: regexp.MustCompile(`^:`)},
	// for x in y: {
	{behind: regexp.MustCompile(`^:[\s\w.]+ni[\s\w]+rof`), after: regexp.MustCompile(`^[{\[]`)},
}

// InsertLineBreaks replaces each whitespace character that sits on a seam of a
// list, map, ternary or for expression with LineBreak. Seams are judged
// against the unmodified input, so every replacement is independent of the
// others.
func InsertLineBreaks(text string) string {
	reversed := reverse(text)

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isSpace(rune(c)) && onSeam(reversed[len(text)-i:], text[i+1:]) {
			b.WriteString(LineBreak)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// reverse returns s with its bytes in reverse order. Every seam pattern is
// ASCII, so split multi-byte runes never match.
func reverse(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[len(s)-1-i] = s[i]
	}
	return string(out)
}

func onSeam(behind, after string) bool {
	for _, s := range seams {
		if s.behind != nil && !s.behind.MatchString(behind) {
			continue
		}
		if s.after != nil && !s.after.MatchString(after) {
			continue
		}
		return true
	}
	return false
}
