package main

import (
	"log"
	"os"

	mdcli "github.com/go-barry/mdpreview/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:      "mdpreview",
		Usage:     "Preview Markdown files as GitHub-styled HTML in the browser",
		ArgsUsage: "[file.md]",
		Flags:     mdcli.ServeFlags(),
		Action:    mdcli.Serve,
		Commands: []*clilib.Command{
			mdcli.ServeCommand,
			mdcli.ExportCommand,
			mdcli.CheckCommand,
			mdcli.InfoCommand,
			mdcli.CleanCommand,
			mdcli.InitCommand,
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
