package core

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
)

// ExportHTML writes page to <outDir>/<name>.html, plus a gzipped copy when
// withGzip is set. It returns the path of the HTML file.
func ExportHTML(outDir, name string, page []byte, withGzip bool) (string, error) {
	name = strings.TrimSuffix(filepath.ToSlash(name), markdownExt)
	htmlPath := filepath.Join(outDir, filepath.FromSlash(name)+".html")

	if err := os.MkdirAll(filepath.Dir(htmlPath), os.ModePerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(htmlPath, page, 0644); err != nil {
		return "", err
	}

	if !withGzip {
		return htmlPath, nil
	}

	f, err := os.Create(htmlPath + ".gz")
	if err != nil {
		return "", err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(page); err != nil {
		gz.Close()
		return "", err
	}
	if err := gz.Close(); err != nil {
		return "", err
	}

	return htmlPath, nil
}

// ExportedPages counts the .html files below outDir. A missing directory
// holds zero pages.
func ExportedPages(outDir string) (int, error) {
	count := 0
	err := filepath.WalkDir(outDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == outDir {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".html") {
			count++
		}
		return nil
	})
	return count, err
}
