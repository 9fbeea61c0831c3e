package render

import (
	"strings"

	"github.com/dgallion1/mdsort/internal/doctree"
)

// LineSeparator joins rendered lines.
const LineSeparator = "\n"

// Markdown serializes a document back to text.
//
// A blank line separates the preamble from the first section when the
// preamble ends in a non-blank line. Top-level sections are separated by a
// blank line unless the previous section already ends in one, which keeps
// re-sorting a sorted document a no-op. Nested sections get no injected
// separators.
func Markdown(doc *doctree.Document) string {
	var lines []string

	lines = append(lines, doc.Preamble...)
	if len(doc.Preamble) > 0 && len(doc.Sections) > 0 && !isBlank(doc.Preamble[len(doc.Preamble)-1]) {
		lines = append(lines, "")
	}

	for i, s := range doc.Sections {
		if i > 0 && !isBlank(lines[len(lines)-1]) {
			lines = append(lines, "")
		}
		lines = appendSection(lines, s)
	}

	return strings.Join(lines, LineSeparator)
}

// Section serializes a single section and its descendants.
func Section(s *doctree.Section) string {
	return strings.Join(appendSection(nil, s), LineSeparator)
}

func appendSection(lines []string, s *doctree.Section) []string {
	lines = append(lines, s.Header())
	lines = append(lines, s.Content...)
	for _, child := range s.Children {
		lines = appendSection(lines, child)
	}
	return lines
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
