package core

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/page.html
var defaultPageTemplate string

// PageData is what the page template is executed with.
type PageData struct {
	Title   string
	Content template.HTML
}

func PageFuncs() template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["safeHTML"] = func(s interface{}) template.HTML {
		switch val := s.(type) {
		case template.HTML:
			return val
		case string:
			return template.HTML(val)
		default:
			return ""
		}
	}
	return funcs
}

// LoadPageTemplate parses the template at path, or the embedded GitHub-style
// page when path is empty.
func LoadPageTemplate(path string) (*template.Template, error) {
	if path == "" {
		return template.New("page").Funcs(PageFuncs()).Parse(defaultPageTemplate)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(PageFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return tmpl, nil
}

func executePage(tmpl *template.Template, data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}
