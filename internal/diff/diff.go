// Package diff renders a line-oriented preview of a buffer rewrite.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// context is the number of unchanged lines kept around each change.
const context = 3

// Unified returns a line diff of before and after with -/+ prefixes and
// long unchanged runs elided. It returns the empty string when the two
// buffers are identical.
func Unified(before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lineText := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineText)

	var sb strings.Builder
	for i, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&sb, "-", lines)
		case diffmatchpatch.DiffInsert:
			writeLines(&sb, "+", lines)
		case diffmatchpatch.DiffEqual:
			// Keep a few lines of context after the previous change
			// and before the next one; elide the rest.
			head, tail := context, context
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}
			if len(lines) <= head+tail+1 {
				writeLines(&sb, " ", lines)
				continue
			}
			writeLines(&sb, " ", lines[:head])
			sb.WriteString("  ...\n")
			writeLines(&sb, " ", lines[len(lines)-tail:])
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeLines(sb *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		sb.WriteString(prefix)
		sb.WriteString(" ")
		sb.WriteString(l)
		sb.WriteString("\n")
	}
}
