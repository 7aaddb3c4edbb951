package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort           = 8000
	DefaultHost           = "0.0.0.0"
	DefaultIndex          = "README.md"
	DefaultTitle          = "Markdown Preview"
	DefaultHighlightStyle = "github"
	DefaultOutputDir      = "./preview"
)

type Config struct {
	Port           int    `yaml:"port"`
	Host           string `yaml:"host"`
	Root           string `yaml:"root"`
	Index          string `yaml:"index"`
	Title          string `yaml:"title"`
	HighlightStyle string `yaml:"highlightStyle"`
	Template       string `yaml:"template"`
	Minify         bool   `yaml:"minify"`
	OpenBrowser    *bool  `yaml:"openBrowser"`
	OutputDir      string `yaml:"outputDir"`
	DebugHeaders   bool   `yaml:"debugHeaders"`
	DebugLogs      bool   `yaml:"debugLogs"`
}

func DefaultConfig() Config {
	open := true
	return Config{
		Port:           DefaultPort,
		Host:           DefaultHost,
		Root:           ".",
		Index:          DefaultIndex,
		Title:          DefaultTitle,
		HighlightStyle: DefaultHighlightStyle,
		OpenBrowser:    &open,
		OutputDir:      DefaultOutputDir,
	}
}

// LoadConfig reads path and fills every unset key with its default. A missing
// file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// ReadConfig is LoadConfig for a file that has to be there.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Port == 0 {
		c.Port = def.Port
	}
	if c.Host == "" {
		c.Host = def.Host
	}
	if c.Root == "" {
		c.Root = def.Root
	}
	if c.Index == "" {
		c.Index = def.Index
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.HighlightStyle == "" {
		c.HighlightStyle = def.HighlightStyle
	}
	if c.OpenBrowser == nil {
		c.OpenBrowser = def.OpenBrowser
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}

	return c
}

func (c Config) ShouldOpenBrowser() bool {
	return c.OpenBrowser == nil || *c.OpenBrowser
}
