package core

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MarkdownFiles lists every .md file below dir, as slash-separated paths
// relative to dir. Hidden directories and the directories in skip are not
// descended into.
func MarkdownFiles(dir string, skip ...string) ([]string, error) {
	skipped := map[string]bool{}
	for _, s := range skip {
		if s != "" {
			skipped[filepath.Clean(s)] = true
		}
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && (strings.HasPrefix(d.Name(), ".") || skipped[filepath.Clean(path)]) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || fileSuffix(d.Name()) != markdownExt {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
