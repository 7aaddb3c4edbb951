package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestCleanCommand_CleansOutputDir(t *testing.T) {
	chdirTemp(t)
	writeFile(t, "mdpreview.yml", "outputDir: out\n")
	writeFile(t, filepath.Join("out", "README.html"), "<html></html>")

	app := &cli.App{Commands: []*cli.Command{CleanCommand}}

	var runErr error
	output := captureOutput(func() {
		runErr = app.Run([]string{"mdpreview", "clean"})
	})
	if runErr != nil {
		t.Fatalf("clean command failed: %v", runErr)
	}

	if _, err := os.Stat("out"); !os.IsNotExist(err) {
		t.Errorf("expected output dir to be deleted, got err=%v", err)
	}
	if !strings.Contains(output, "🗑️  Removed out (1 exported pages)") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestCleanCommand_CleansSubdirectory(t *testing.T) {
	chdirTemp(t)
	writeFile(t, "mdpreview.yml", "outputDir: out\n")
	writeFile(t, filepath.Join("out", "docs", "guide.html"), "guide")
	writeFile(t, filepath.Join("out", "README.html"), "readme")

	app := &cli.App{Commands: []*cli.Command{CleanCommand}}

	var runErr error
	captureOutput(func() {
		runErr = app.Run([]string{"mdpreview", "clean", "/docs"})
	})
	if runErr != nil {
		t.Fatalf("clean command failed: %v", runErr)
	}

	if _, err := os.Stat(filepath.Join("out", "docs")); !os.IsNotExist(err) {
		t.Errorf("expected subdirectory to be deleted")
	}
	if _, err := os.Stat(filepath.Join("out", "README.html")); err != nil {
		t.Errorf("expected sibling page to survive: %v", err)
	}
}

func TestCleanCommand_NothingToClean(t *testing.T) {
	chdirTemp(t)

	app := &cli.App{Commands: []*cli.Command{CleanCommand}}

	var runErr error
	output := captureOutput(func() {
		runErr = app.Run([]string{"mdpreview", "clean"})
	})
	if runErr != nil {
		t.Fatalf("expected no error, got: %v", runErr)
	}
	if !strings.Contains(output, "📭 No exported pages under") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestCleanCommand_NotADirectory(t *testing.T) {
	chdirTemp(t)
	writeFile(t, "mdpreview.yml", "outputDir: out.html\n")
	writeFile(t, "out.html", "file")

	app := &cli.App{Commands: []*cli.Command{CleanCommand}}

	var runErr error
	captureOutput(func() {
		runErr = app.Run([]string{"mdpreview", "clean"})
	})
	if runErr == nil || !strings.Contains(runErr.Error(), "is not a directory") {
		t.Fatalf("expected not a directory error, got: %v", runErr)
	}
}

func TestCleanCommand_RefusesOutsideOutputDir(t *testing.T) {
	chdirTemp(t)
	writeFile(t, "mdpreview.yml", "outputDir: out\n")
	writeFile(t, filepath.Join("keep", "file.txt"), "keep me")
	_ = os.MkdirAll("out", 0755)

	app := &cli.App{Commands: []*cli.Command{CleanCommand}}

	var runErr error
	captureOutput(func() {
		runErr = app.Run([]string{"mdpreview", "clean", "../keep"})
	})
	if runErr == nil {
		t.Fatal("expected an error")
	}
	if _, err := os.Stat(filepath.Join("keep", "file.txt")); err != nil {
		t.Errorf("expected file outside output dir to survive: %v", err)
	}
}

func TestCleanCommand_DryRunKeepsFiles(t *testing.T) {
	chdirTemp(t)
	writeFile(t, "mdpreview.yml", "outputDir: out\n")
	writeFile(t, filepath.Join("out", "README.html"), "readme")
	writeFile(t, filepath.Join("out", "docs", "guide.html"), "guide")

	app := &cli.App{Commands: []*cli.Command{CleanCommand}}

	var runErr error
	output := captureOutput(func() {
		runErr = app.Run([]string{"mdpreview", "clean", "--dry-run"})
	})
	if runErr != nil {
		t.Fatalf("dry run failed: %v", runErr)
	}

	if !strings.Contains(output, "🔍 Would remove out (2 exported pages)") {
		t.Errorf("unexpected output:\n%s", output)
	}
	if _, err := os.Stat(filepath.Join("out", "docs", "guide.html")); err != nil {
		t.Errorf("dry run must not delete anything: %v", err)
	}
}

func TestExportTarget(t *testing.T) {
	tests := []struct {
		sub     string
		want    string
		wantErr bool
	}{
		{"", "out", false},
		{"docs", filepath.Join("out", "docs"), false},
		{"/docs/api", filepath.Join("out", "docs", "api"), false},
		{"..", "", true},
		{"../keep", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.sub, func(t *testing.T) {
			got, err := exportTarget("out", tt.sub)
			if (err != nil) != tt.wantErr {
				t.Fatalf("exportTarget(%q) error = %v", tt.sub, err)
			}
			if got != tt.want {
				t.Errorf("exportTarget(%q) = %q, want %q", tt.sub, got, tt.want)
			}
		})
	}
}
