package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-barry/mdpreview/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Render every Markdown file under the preview root and report failures",
	Flags: []cli.Flag{configFlag()},
	Action: func(c *cli.Context) error {
		config, err := loadConfig(c)
		if err != nil {
			return err
		}

		renderer, err := core.NewRenderer(config)
		if err != nil {
			return cli.Exit(fmt.Sprintf("❌ renderer: %v", err), 1)
		}

		files, err := core.MarkdownFiles(config.Root, filepath.Join(config.Root, config.OutputDir))
		if err != nil {
			return fmt.Errorf("failed to list markdown files: %w", err)
		}

		if len(files) == 0 {
			fmt.Println("🤷 No Markdown files found in", config.Root)
			return nil
		}

		var failed bool
		for _, file := range files {
			src, err := os.ReadFile(filepath.Join(config.Root, filepath.FromSlash(file)))
			if err != nil {
				failed = true
				fmt.Printf("❌ %s → read error: %v\n", file, err)
				continue
			}

			if _, err := renderer.Page(src); err != nil {
				failed = true
				fmt.Printf("❌ %s → render error: %v\n", file, err)
				continue
			}

			fmt.Printf("✅ %s\n", file)
		}

		if failed {
			return cli.Exit("some markdown files failed to render", 1)
		}

		fmt.Println("✅ All Markdown files rendered successfully.")
		return nil
	},
}
