package sorter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dgallion1/mdsort/internal/doctree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode selects how titles are folded before comparison.
type Mode string

const (
	// ModeLower applies the Unicode lowercase mapping.
	ModeLower Mode = "lower"
	// ModeFold applies Unicode case folding, so "Straße" and "STRASSE" tie.
	ModeFold Mode = "fold"
)

// ParseMode converts a mode name into a Mode. The empty string selects
// ModeLower.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLower:
		return ModeLower, nil
	case ModeFold:
		return ModeFold, nil
	default:
		return "", fmt.Errorf("unknown case mode %q (want %q or %q)", s, ModeLower, ModeFold)
	}
}

// Sorter orders sections alphabetically by title, case-insensitively.
type Sorter struct {
	mode Mode
}

// New returns a Sorter for the given mode. Unknown modes fall back to
// ModeLower.
func New(mode Mode) *Sorter {
	if mode != ModeFold {
		mode = ModeLower
	}
	return &Sorter{mode: mode}
}

// Mode reports the fold mode in use.
func (s *Sorter) Mode() Mode {
	return s.mode
}

// Key returns the folded form of a title used for comparison.
func (s *Sorter) Key(title string) string {
	// cases.Caser is stateful, so each call gets its own.
	if s.mode == ModeFold {
		return cases.Fold().String(title)
	}
	return cases.Lower(language.Und).String(title)
}

// Compare orders two titles by their folded keys.
func (s *Sorter) Compare(a, b string) int {
	return strings.Compare(s.Key(a), s.Key(b))
}

// Sort reorders the document's forest and every section's children in place.
// Content lines are never touched.
func (s *Sorter) Sort(doc *doctree.Document) {
	s.SortSections(doc.Sections)
}

// SortSections stably sorts a sibling list and, recursively, the children of
// each of its sections.
func (s *Sorter) SortSections(sections []*doctree.Section) {
	if len(sections) > 1 {
		keys := make(map[*doctree.Section]string, len(sections))
		for _, sec := range sections {
			keys[sec] = s.Key(sec.Title)
		}
		slices.SortStableFunc(sections, func(a, b *doctree.Section) int {
			return strings.Compare(keys[a], keys[b])
		})
	}
	for _, sec := range sections {
		s.SortSections(sec.Children)
	}
}

// Sort orders a document with the default lowercase mode.
func Sort(doc *doctree.Document) {
	New(ModeLower).Sort(doc)
}
