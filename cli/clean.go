package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-barry/mdpreview/core"
	"github.com/urfave/cli/v2"
)

var CleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Remove exported pages (outputDir in mdpreview.yml, or one subdirectory of it)",
	ArgsUsage: "[subdirectory]",
	Flags: []cli.Flag{
		configFlag(),
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "report what would be removed without deleting anything",
		},
	},
	Action: clean,
}

func clean(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	target, err := exportTarget(config.OutputDir, c.Args().First())
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	switch {
	case os.IsNotExist(err):
		fmt.Println("📭 No exported pages under", target)
		return nil
	case err != nil:
		return fmt.Errorf("stat %s: %w", target, err)
	case !info.IsDir():
		return fmt.Errorf("%s is not a directory", target)
	}

	pages, err := core.ExportedPages(target)
	if err != nil {
		return fmt.Errorf("count exported pages: %w", err)
	}

	if c.Bool("dry-run") {
		fmt.Printf("🔍 Would remove %s (%d exported pages)\n", target, pages)
		return nil
	}

	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("remove %s: %w", target, err)
	}
	fmt.Printf("🗑️  Removed %s (%d exported pages)\n", target, pages)
	return nil
}

// exportTarget joins sub onto outDir and refuses anything that climbs out of
// it.
func exportTarget(outDir, sub string) (string, error) {
	if sub == "" {
		return outDir, nil
	}

	target := filepath.Join(outDir, strings.TrimPrefix(sub, "/"))
	rel, err := filepath.Rel(outDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("refusing to clean outside %s: %s", outDir, target)
	}
	return target, nil
}
