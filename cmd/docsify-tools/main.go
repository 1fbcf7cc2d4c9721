package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsify-tools/cmd/docsify-tools/commands"
	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
	"git.home.luguber.info/inful/docsify-tools/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docsify-tools"),
		kong.Description("Docsify site tooling: scaffold a site, generate sidebars, render API docs, and preview locally."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli)
	if err != nil {
		adapter := derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		fmt.Fprintln(os.Stderr, adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}
}
