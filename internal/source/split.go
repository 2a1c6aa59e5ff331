// Package source turns raw Terraform text into one flat string per declared
// block. It is a lexical pass: comments go, whitespace is squeezed to single
// spaces and the text is cut at every occurrence of the block keyword.
package source

import (
	"regexp"
	"strings"

	"github.com/vk/tfmdcli/internal/model"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	// Go's regexp has no lookbehind, so the preceding character is captured
	// and written back.
	slashComment = regexp.MustCompile(`(?m)(^|\s)//.*$`)
	hashComment  = regexp.MustCompile(`#.*`)
	blankLines   = regexp.MustCompile(`\n\n+`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Normalize strips comments and collapses whitespace. Runs of two or more
// newlines are removed entirely before the remaining whitespace is collapsed.
func Normalize(text string) string {
	text = blockComment.ReplaceAllString(text, "")
	text = slashComment.ReplaceAllString(text, "$1")
	text = hashComment.ReplaceAllString(text, "")
	text = blankLines.ReplaceAllString(text, "")
	return whitespace.ReplaceAllString(text, " ")
}

// Split normalizes text and cuts it into one segment per block of the given
// kind. A leading empty or single-space segment is dropped; any other blank
// segments are returned as they are.
func Split(kind model.BlockKind, text string) []string {
	segments := strings.Split(Normalize(text), kind.String()+" ")
	if len(segments) > 0 && (segments[0] == "" || segments[0] == " ") {
		segments = segments[1:]
	}
	return segments
}
