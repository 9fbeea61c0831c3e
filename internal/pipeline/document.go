package pipeline

import (
	"crypto/sha256"
	"fmt"

	"github.com/dgallion1/mdsort/internal/parser"
	"github.com/dgallion1/mdsort/internal/render"
	"github.com/dgallion1/mdsort/internal/sorter"
)

// Options control how documents are sorted.
type Options struct {
	CaseMode sorter.Mode
}

// Pipeline runs parse, sort and render over whole documents. It holds no
// per-document state and is safe for concurrent use.
type Pipeline struct {
	sorter *sorter.Sorter
}

// New creates a pipeline.
func New(opts Options) *Pipeline {
	return &Pipeline{sorter: sorter.New(opts.CaseMode)}
}

// Sort returns text with every level of sections ordered by title.
func (p *Pipeline) Sort(text string) string {
	doc := parser.ParseString(text)
	p.sorter.Sort(doc)
	return render.Markdown(doc)
}

// Check returns the ordering violations in text without modifying it.
func (p *Pipeline) Check(text string) []sorter.Violation {
	return p.sorter.Check(parser.ParseString(text))
}

var defaultPipeline = New(Options{})

// SortDocument sorts text with the default options.
func SortDocument(text string) string {
	return defaultPipeline.Sort(text)
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
