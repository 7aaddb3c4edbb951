package cli

import (
	"fmt"
	"path/filepath"

	"github.com/go-barry/mdpreview/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print configuration and a summary of the preview root",
	Flags: []cli.Flag{configFlag()},
	Action: func(c *cli.Context) error {
		config, err := loadConfig(c)
		if err != nil {
			return err
		}

		fmt.Println("📁 Root:", config.Root)
		fmt.Printf("🌐 Address: %s:%d\n", config.Host, config.Port)
		fmt.Println("📄 Index:", config.Index)
		fmt.Println("🎨 Highlight Style:", config.HighlightStyle)
		fmt.Println("🗜️  Minify Enabled:", config.Minify)
		fmt.Println("📦 Output Directory:", config.OutputDir)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Println()

		files, err := core.MarkdownFiles(config.Root, filepath.Join(config.Root, config.OutputDir))
		if err != nil {
			return fmt.Errorf("failed to list markdown files: %w", err)
		}

		exported, err := core.ExportedPages(config.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to count exported pages: %w", err)
		}

		fmt.Println("📝 Markdown Files Found:", len(files))
		fmt.Println("💾 Exported Pages:", exported)

		return nil
	},
}
