package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/docsify-tools/internal/apidocs"
	"git.home.luguber.info/inful/docsify-tools/internal/apimodel"
	"git.home.luguber.info/inful/docsify-tools/internal/config"
	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
	"git.home.luguber.info/inful/docsify-tools/internal/logfields"
)

// ApidocsCmd implements the 'apidocs' command. Flags take precedence over
// the configuration file.
type ApidocsCmd struct {
	Model  string `short:"m" name:"model" help:"Path to the API model JSON file (overrides config)"`
	Output string `short:"o" name:"output" help:"Output directory for generated pages (overrides config)"`
}

func (a *ApidocsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}

	modelPath := cfg.API.Model
	if a.Model != "" {
		modelPath = a.Model
	}
	if modelPath == "" {
		return derrors.ValidationFailed("model", "no API model file given (use --model or the api.model config key)")
	}
	output := cfg.API.Output
	if a.Output != "" {
		output = a.Output
	}

	model, err := apimodel.Load(modelPath)
	if err != nil {
		return err
	}

	count, err := apidocs.NewGenerator(output).Generate(model)
	if err != nil {
		return err
	}
	slog.Info("API pages generated",
		logfields.Output(output),
		logfields.Count(count))
	return nil
}
