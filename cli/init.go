package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-barry/mdpreview/core"
)

//go:embed _starter/*
var starterFS embed.FS

var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Write a starter README.md and mdpreview.yml into the working directory",
	Action: func(c *cli.Context) error {
		targetDir, _ := os.Getwd()
		fmt.Println("🚀 Creating preview starter in:", targetDir)

		if err := validateStarterConfig(starterFS, "_starter/mdpreview.yml"); err != nil {
			return err
		}

		written, err := copyEmbeddedDir(starterFS, "_starter", targetDir)
		if err != nil {
			return fmt.Errorf("failed to create starter: %w", err)
		}

		for _, f := range written {
			fmt.Println("📝 Wrote", f)
		}

		fmt.Println("✅ Starter created successfully.")
		fmt.Println("▶  Run: mdpreview")
		return nil
	},
}

func validateStarterConfig(source fs.FS, path string) error {
	data, err := fs.ReadFile(source, path)
	if err != nil {
		return fmt.Errorf("missing starter config: %w", err)
	}

	var cfg core.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("invalid starter config: %w", err)
	}
	return nil
}

// copyEmbeddedDir copies sourceDir into targetDir and returns the relative
// paths it wrote. Files that already exist are left alone.
func copyEmbeddedDir(source fs.FS, sourceDir string, targetDir string) ([]string, error) {
	var written []string

	err := fs.WalkDir(source, sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		targetPath := filepath.Join(targetDir, rel)

		if d.IsDir() {
			return os.MkdirAll(targetPath, os.ModePerm)
		}

		if _, err := os.Stat(targetPath); err == nil {
			fmt.Println("⏭️  Skipping existing", rel)
			return nil
		}

		data, err := fs.ReadFile(source, path)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), os.ModePerm); err != nil {
			return err
		}

		if err := os.WriteFile(targetPath, data, 0644); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	})

	return written, err
}
