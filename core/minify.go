package core

import (
	"bytes"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// Minifier shrinks rendered pages. Document and end tags are kept so the
// result is still a complete <html> document.
type Minifier struct {
	m *minify.M
}

func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.Add("text/html", &minhtml.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	return &Minifier{m: m}
}

func (mn *Minifier) HTML(page []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := mn.m.Minify("text/html", &buf, bytes.NewReader(page)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
