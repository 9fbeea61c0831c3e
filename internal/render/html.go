package render

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var previewer = goldmark.New(
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

// HTML renders markdown text as an HTML fragment for previewing a sorted
// document. Raw HTML in the source is omitted.
func HTML(w io.Writer, markdown string) error {
	if err := previewer.Convert([]byte(markdown), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
