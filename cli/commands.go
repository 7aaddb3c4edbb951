package cli

import (
	"errors"
	"fmt"

	"github.com/go-barry/mdpreview"
	"github.com/go-barry/mdpreview/core"

	"github.com/urfave/cli/v2"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "config",
		Usage: "path to the configuration file",
		Value: mdpreview.DefaultConfigPath,
	}
}

// ServeFlags are accepted by the root command and by serve. None of them is
// required.
func ServeFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.IntFlag{
			Name:  "port",
			Usage: "port to listen on (default: port in the config file, or 8000)",
		},
		&cli.BoolFlag{
			Name:  "no-browser",
			Usage: "do not open the browser on startup",
		},
	}
}

// loadConfig falls back to defaults only when --config was left alone; a
// file named explicitly has to exist.
func loadConfig(c *cli.Context) (core.Config, error) {
	path := c.String("config")
	if path == "" {
		path = mdpreview.DefaultConfigPath
	}
	if c.IsSet("config") {
		return core.ReadConfig(path)
	}
	return core.LoadConfig(path)
}

// Serve starts the preview server. The optional argument names a Markdown
// file that must exist; the server keeps serving the working directory.
func Serve(c *cli.Context) error {
	cfg := mdpreview.RuntimeConfig{
		File:          c.Args().First(),
		ConfigPath:    c.String("config"),
		RequireConfig: c.IsSet("config"),
		Port:          c.Int("port"),
		NoBrowser:     c.Bool("no-browser"),
	}

	err := mdpreview.Start(cfg)
	if cfg.File != "" && errors.Is(err, core.ErrNotFound) {
		return cli.Exit(fmt.Sprintf("Error: File '%s' not found", cfg.File), 1)
	}
	return err
}

var ServeCommand = &cli.Command{
	Name:      "serve",
	Usage:     "Serve README.md and any *.md file in the working directory as GitHub-styled HTML",
	ArgsUsage: "[file.md]",
	Flags:     ServeFlags(),
	Action:    Serve,
}
