package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-barry/mdpreview/core"
	"github.com/urfave/cli/v2"
)

var ExportCommand = &cli.Command{
	Name:      "export",
	Usage:     "Render a Markdown file into a standalone HTML page in the output directory",
	ArgsUsage: "<file.md>",
	Flags: []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "out",
			Usage: "output directory (default: outputDir in the config file)",
		},
		&cli.BoolFlag{
			Name:  "gzip",
			Usage: "also write a gzipped copy next to the page",
		},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return cli.Exit("export needs a Markdown file", 1)
		}
		file := c.Args().First()

		if filepath.Ext(file) != ".md" {
			return cli.Exit(fmt.Sprintf("Error: '%s' is not a Markdown file", file), 1)
		}

		src, err := os.ReadFile(file)
		if err != nil {
			if os.IsNotExist(err) {
				return cli.Exit(fmt.Sprintf("Error: File '%s' not found", file), 1)
			}
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		config, err := loadConfig(c)
		if err != nil {
			return err
		}
		outDir := config.OutputDir
		if c.String("out") != "" {
			outDir = c.String("out")
		}

		renderer, err := core.NewRenderer(config)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}

		page, err := renderer.Page(src)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", file, err)
		}

		htmlPath, err := core.ExportHTML(outDir, filepath.Base(file), page, c.Bool("gzip"))
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", file, err)
		}

		fmt.Println("📄 Exported:", htmlPath)
		return nil
	},
}
