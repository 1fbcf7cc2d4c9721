package commands

import (
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/docsify-tools/internal/config"
	"git.home.luguber.info/inful/docsify-tools/internal/logfields"
	"git.home.luguber.info/inful/docsify-tools/internal/sidebar"
)

// SidebarCmd implements the 'sidebar' command.
type SidebarCmd struct {
	Docs          string   `short:"d" name:"docs" help:"Docs directory to scan (overrides config)"`
	Ignore        []string `name:"ignore" help:"Extra glob patterns to skip (repeatable)"`
	HeadingTitles bool     `name:"heading-titles" help:"Use each file's first level-1 heading as its label"`
}

func (s *SidebarCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}

	docs := cfg.Docs
	if s.Docs != "" {
		docs = s.Docs
	}
	opts := sidebar.Options{
		Ignore:        append(cfg.Sidebar.Ignore, s.Ignore...),
		HeadingTitles: cfg.Sidebar.HeadingTitles || s.HeadingTitles,
	}

	count, err := sidebar.Generate(docs, opts)
	if err != nil {
		return err
	}
	slog.Info("Sidebar generated",
		logfields.File(filepath.Join(docs, sidebar.FileName)),
		logfields.Count(count))
	return nil
}
