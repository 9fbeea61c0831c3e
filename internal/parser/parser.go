package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/mdsort/internal/doctree"
)

// LineSeparator splits documents into lines and joins them back.
const LineSeparator = "\n"

// ParseString splits text on LineSeparator and parses the lines.
func ParseString(text string) *doctree.Document {
	return Parse(strings.Split(text, LineSeparator))
}

// Parse builds a document tree from an ordered sequence of lines.
//
// Headers nest under the nearest open header of strictly lesser depth, so a
// depth-3 header directly after a depth-1 header becomes its child. Lines
// before the first header form the preamble.
func Parse(lines []string) *doctree.Document {
	doc := &doctree.Document{}

	// Ancestor stack, outermost first.
	var stack []*doctree.Section

	for _, line := range lines {
		depth, title, ok := ParseHeader(line)
		if !ok {
			if len(stack) == 0 {
				doc.Preamble = append(doc.Preamble, line)
			} else {
				top := stack[len(stack)-1]
				top.Content = append(top.Content, line)
			}
			continue
		}

		node := &doctree.Section{Title: title, Depth: depth}

		for len(stack) > 0 && stack[len(stack)-1].Depth >= depth {
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		} else {
			doc.Sections = append(doc.Sections, node)
		}
		stack = append(stack, node)
	}

	return doc
}

// ParseHeader reports whether line is a header and returns its depth and
// title. A header is one or more markers, at least one whitespace rune, then
// text that is non-empty once trimmed.
func ParseHeader(line string) (depth int, title string, ok bool) {
	for depth < len(line) && line[depth] == doctree.Marker {
		depth++
	}
	if depth == 0 {
		return 0, "", false
	}

	rest := line[depth:]
	r, _ := utf8.DecodeRuneInString(rest)
	if rest == "" || !unicode.IsSpace(r) {
		return 0, "", false
	}

	title = strings.TrimSpace(rest)
	if title == "" {
		return 0, "", false
	}
	return depth, title, true
}
