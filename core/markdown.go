package core

import (
	"bytes"
	"fmt"
	"html/template"
	"unicode/utf8"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer turns Markdown sources into complete preview pages. It holds no
// per-document state and is safe to reuse across requests.
type Renderer struct {
	md       goldmark.Markdown
	page     *template.Template
	title    string
	minifier *Minifier
}

func NewRenderer(config Config) (*Renderer, error) {
	style := config.HighlightStyle
	if style == "" {
		style = DefaultHighlightStyle
	}
	if _, ok := styles.Registry[style]; !ok {
		return nil, fmt.Errorf("unknown highlight style %q", style)
	}

	page, err := LoadPageTemplate(config.Template)
	if err != nil {
		return nil, err
	}

	title := config.Title
	if title == "" {
		title = DefaultTitle
	}

	r := &Renderer{
		md:    newMarkdown(style),
		page:  page,
		title: title,
	}
	if config.Minify {
		r.minifier = NewMinifier()
	}
	return r, nil
}

func newMarkdown(style string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
					chromahtml.TabWidth(4),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(tocTransformer{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)
}

// Markdown converts src to an HTML fragment. src must be valid UTF-8.
func (r *Renderer) Markdown(src []byte) (template.HTML, error) {
	if !utf8.Valid(src) {
		return "", ErrInvalidEncoding
	}

	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Page converts src and wraps it in the page template.
func (r *Renderer) Page(src []byte) ([]byte, error) {
	content, err := r.Markdown(src)
	if err != nil {
		return nil, err
	}

	page, err := executePage(r.page, PageData{Title: r.title, Content: content})
	if err != nil {
		return nil, err
	}

	if r.minifier != nil {
		page, err = r.minifier.HTML(page)
		if err != nil {
			return nil, fmt.Errorf("minify page: %w", err)
		}
	}
	return page, nil
}
