package core

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

const tocMarker = "[TOC]"

// tocTransformer replaces every paragraph consisting only of [TOC] with a
// nested list linking to the document's headings.
type tocTransformer struct{}

func (tocTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	src := reader.Source()

	var markers []ast.Node
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if p, ok := n.(*ast.Paragraph); ok {
			if isTOCMarker(p, src) {
				markers = append(markers, p)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if len(markers) == 0 {
		return
	}

	tree, err := toc.Inspect(doc, src)
	if err != nil {
		return
	}

	for _, marker := range markers {
		parent := marker.Parent()
		list := toc.RenderList(tree)
		if list == nil {
			parent.RemoveChild(parent, marker)
			continue
		}
		parent.ReplaceChild(parent, marker, list)
	}
}

func isTOCMarker(p *ast.Paragraph, src []byte) bool {
	var buf bytes.Buffer
	lines := p.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return string(bytes.TrimSpace(buf.Bytes())) == tocMarker
}
