package config

import (
	"os"

	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
)

const starterConfig = `# docsify-tools configuration
#
# Values support ${ENV_VAR} expansion; a .env file next to this file is
# loaded automatically (existing process environment wins).

# Root directory holding the markdown documentation.
docs: ./docs

site:
  title: Documentation
  description: ""
  # docsify theme: vue, buble, dark, or pure
  theme: vue
  # Optional repository URL shown in the site corner.
  repo: ""

sidebar:
  # Extra glob patterns to skip during the directory scan.
  # Dotfiles, _sidebar.md and node_modules are always skipped.
  ignore: []
  # Use each document's first level-1 heading as its sidebar label.
  heading_titles: false

api:
  # Path to the JSON API model consumed by 'apidocs'.
  model: ""
  # Directory receiving the generated API pages (cleared on every run).
  output: ./docs/api

serve:
  port: 3000
  live_reload: true
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ValidationFailed("config", "configuration file already exists: "+configPath+" (use --force to overwrite)")
	}

	if err := os.WriteFile(configPath, []byte(starterConfig), 0o644); err != nil {
		return derrors.WriteFailed(configPath, err)
	}
	return nil
}
