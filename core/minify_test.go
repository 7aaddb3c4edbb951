package core

import (
	"strings"
	"testing"
)

func TestMinifier_HTML(t *testing.T) {
	page := []byte(`<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            color: #24292e;
        }
    </style>
</head>
<body>
    <p>hello</p>
    <pre>keep
   this</pre>
</body>
</html>
`)

	out, err := NewMinifier().HTML(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := string(out)
	if len(out) >= len(page) {
		t.Errorf("expected smaller output, got %d >= %d", len(out), len(page))
	}
	for _, want := range []string{"<html>", "<head>", "<body>", "</body>", "</html>", "<p>hello</p>"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in %s", want, html)
		}
	}
	if !strings.Contains(html, "keep\n   this") {
		t.Errorf("expected preformatted text to be kept, got %s", html)
	}
	if strings.Contains(html, "color: #24292e") {
		t.Errorf("expected inline css to be minified, got %s", html)
	}
}
