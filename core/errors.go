package core

import "errors"

var (
	ErrNotFound    = errors.New("mdpreview: not found")
	ErrNotMarkdown = errors.New("mdpreview: not a markdown file")

	ErrInvalidEncoding = errors.New("mdpreview: source is not valid UTF-8")
)

// IsNotFoundError reports whether err means the requested file cannot be
// rendered. A file that exists but is not Markdown counts as not found.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotMarkdown)
}
