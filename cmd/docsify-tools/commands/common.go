package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI defines the command tree and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsify.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init    InitCmd    `cmd:"" help:"Initialize a docsify site and configuration file"`
	Sidebar SidebarCmd `cmd:"" help:"Generate _sidebar.md from the docs directory tree"`
	Apidocs ApidocsCmd `cmd:"" help:"Generate markdown API pages from an API model file"`
	Serve   ServeCmd   `cmd:"" help:"Serve the docs locally with live reload"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
