package doctree

import "strings"

// Marker is the symbol whose repetition count marks a header's depth.
const Marker = '#'

// Document is the root of a parsed document.
type Document struct {
	Preamble []string   // Lines before the first header
	Sections []*Section // Top-level sections (the forest)
}

// Section is a header and everything nested beneath it until the next
// header of equal or lesser depth.
type Section struct {
	Title    string     // Header text, markers and surrounding whitespace stripped
	Depth    int        // Number of markers, 1 = outermost
	Content  []string   // Raw lines owned directly by this section
	Children []*Section // Subsections, each deeper than this one
}

// Header reconstructs the section's header line.
func (s *Section) Header() string {
	return strings.Repeat(string(Marker), s.Depth) + " " + s.Title
}

// Walk visits sections depth-first in document order. The path holds the
// titles of the visited section's ancestors.
func Walk(sections []*Section, fn func(s *Section, path []string)) {
	walk(sections, nil, fn)
}

func walk(sections []*Section, path []string, fn func(*Section, []string)) {
	for _, s := range sections {
		fn(s, path)
		if len(s.Children) > 0 {
			next := make([]string, len(path), len(path)+1)
			copy(next, path)
			walk(s.Children, append(next, s.Title), fn)
		}
	}
}

// LineCount returns the number of lines the document owns, header lines
// included.
func (d *Document) LineCount() int {
	n := len(d.Preamble)
	Walk(d.Sections, func(s *Section, _ []string) {
		n += 1 + len(s.Content)
	})
	return n
}
