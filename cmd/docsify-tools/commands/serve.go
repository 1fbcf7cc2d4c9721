package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docsify-tools/internal/config"
	"git.home.luguber.info/inful/docsify-tools/internal/server"
)

// ServeCmd implements the 'serve' command: a local preview server with
// sidebar regeneration on change and live reload.
type ServeCmd struct {
	Docs         string `short:"d" name:"docs" help:"Docs directory to serve (overrides config)"`
	Port         int    `short:"p" name:"port" help:"Port to listen on (overrides config)"`
	NoLiveReload bool   `name:"no-live-reload" help:"Disable live reload script injection and SSE endpoint"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	if s.Docs != "" {
		cfg.Docs = s.Docs
	}
	if s.Port != 0 {
		cfg.Serve.Port = s.Port
	}
	if s.NoLiveReload {
		disabled := false
		cfg.Serve.LiveReload = &disabled
	}

	srv, err := server.New(cfg, g.Logger)
	if err != nil {
		return err
	}
	return srv.Run(sigctx)
}
