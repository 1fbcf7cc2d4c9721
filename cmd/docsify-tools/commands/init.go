package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsify-tools/internal/config"
	"git.home.luguber.info/inful/docsify-tools/internal/scaffold"
)

// InitCmd implements the 'init' command: it writes a starter configuration
// file and scaffolds the docsify site shell into the docs directory.
type InitCmd struct {
	Docs  string `short:"d" name:"docs" help:"Docs directory to scaffold (overrides config)"`
	Force bool   `help:"Overwrite existing files"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	fmt.Printf("Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	docs := cfg.Docs
	if i.Docs != "" {
		docs = i.Docs
	}

	fmt.Printf("Scaffolding docsify site in %s\n", docs)
	if err := scaffold.Init(docs, cfg.Site, i.Force); err != nil {
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
