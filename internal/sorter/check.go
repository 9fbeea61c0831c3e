package sorter

import (
	"fmt"
	"strings"

	"github.com/dgallion1/mdsort/internal/doctree"
)

// Violation is a pair of adjacent siblings that are out of order.
type Violation struct {
	Path   []string `json:"path"` // Ancestor titles, outermost first
	Depth  int      `json:"depth"`
	Before string   `json:"before"`
	After  string   `json:"after"`
}

func (v Violation) String() string {
	where := "top level"
	if len(v.Path) > 0 {
		where = strings.Join(v.Path, " > ")
	}
	return fmt.Sprintf("%s: %q should come after %q", where, v.Before, v.After)
}

// Check reports every adjacent sibling pair whose titles are out of order.
// An empty result means the document is already sorted.
func (s *Sorter) Check(doc *doctree.Document) []Violation {
	var out []Violation
	out = s.checkSiblings(doc.Sections, nil, out)
	doctree.Walk(doc.Sections, func(sec *doctree.Section, path []string) {
		if len(sec.Children) < 2 {
			return
		}
		p := make([]string, len(path), len(path)+1)
		copy(p, path)
		out = s.checkSiblings(sec.Children, append(p, sec.Title), out)
	})
	return out
}

func (s *Sorter) checkSiblings(sections []*doctree.Section, path []string, out []Violation) []Violation {
	for i := 1; i < len(sections); i++ {
		prev, cur := sections[i-1], sections[i]
		if s.Compare(prev.Title, cur.Title) > 0 {
			out = append(out, Violation{
				Path:   path,
				Depth:  cur.Depth,
				Before: prev.Title,
				After:  cur.Title,
			})
		}
	}
	return out
}
