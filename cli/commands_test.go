package cli

import (
	"errors"
	"testing"

	"github.com/go-barry/mdpreview"
	"github.com/urfave/cli/v2"
)

var recordedConfig *mdpreview.RuntimeConfig

func mockStart(cfg mdpreview.RuntimeConfig) error {
	recordedConfig = &cfg
	return nil
}

func stubStart(t *testing.T, start func(mdpreview.RuntimeConfig) error) {
	original := mdpreview.Start
	mdpreview.Start = start
	t.Cleanup(func() {
		mdpreview.Start = original
		recordedConfig = nil
	})
}

func TestServeCommand_Defaults(t *testing.T) {
	stubStart(t, mockStart)

	app := &cli.App{Commands: []*cli.Command{ServeCommand}}

	err := app.Run([]string{"mdpreview", "serve"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if recordedConfig == nil {
		t.Fatal("expected Start to be called, but it was not")
	}

	if recordedConfig.File != "" || recordedConfig.Port != 0 || recordedConfig.NoBrowser {
		t.Errorf("unexpected serve config: %+v", recordedConfig)
	}
	if recordedConfig.ConfigPath != mdpreview.DefaultConfigPath {
		t.Errorf("expected default config path, got %q", recordedConfig.ConfigPath)
	}
	if recordedConfig.RequireConfig {
		t.Error("the default config file must stay optional")
	}
}

func TestServeCommand_FlagsAndFile(t *testing.T) {
	stubStart(t, mockStart)

	app := &cli.App{Commands: []*cli.Command{ServeCommand}}

	err := app.Run([]string{"mdpreview", "serve", "--port", "9001", "--no-browser", "--config", "alt.yml", "notes.md"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if recordedConfig == nil {
		t.Fatal("expected Start to be called, but it was not")
	}
	if recordedConfig.File != "notes.md" || recordedConfig.Port != 9001 || !recordedConfig.NoBrowser || recordedConfig.ConfigPath != "alt.yml" || !recordedConfig.RequireConfig {
		t.Errorf("unexpected serve config: %+v", recordedConfig)
	}
}

func TestServe_MissingFileExitsWithCode1(t *testing.T) {
	stubStart(t, func(cfg mdpreview.RuntimeConfig) error {
		return mdpreview.CheckFile(cfg.File)
	})

	app := &cli.App{
		Flags:          ServeFlags(),
		Action:         Serve,
		ExitErrHandler: func(c *cli.Context, err error) {},
	}

	err := app.Run([]string{"mdpreview", "does-not-exist.md"})

	var exitErr cli.ExitCoder
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("expected cli.Exit code 1, got: %v", err)
	}
	if exitErr.Error() != "Error: File 'does-not-exist.md' not found" {
		t.Errorf("unexpected message: %q", exitErr.Error())
	}
}

func TestServe_OtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("listen tcp :8000: bind: address already in use")
	stubStart(t, func(cfg mdpreview.RuntimeConfig) error { return boom })

	app := &cli.App{
		Flags:  ServeFlags(),
		Action: Serve,
	}

	err := app.Run([]string{"mdpreview"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected bind error, got: %v", err)
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		t.Error("did not expect an exit coder for a bind error")
	}
}
