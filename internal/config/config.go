// Package config loads and initializes the docsify-tools configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Docs    string        `yaml:"docs"`
	Site    SiteConfig    `yaml:"site"`
	Sidebar SidebarConfig `yaml:"sidebar"`
	API     APIConfig     `yaml:"api"`
	Serve   ServeConfig   `yaml:"serve"`
}

// SiteConfig describes the docsify site shell written by 'init'.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Theme       string `yaml:"theme,omitempty"`
	Repo        string `yaml:"repo,omitempty"`
}

// SidebarConfig controls sidebar generation.
type SidebarConfig struct {
	// Ignore holds extra glob patterns skipped during the directory scan,
	// in addition to the built-in rules (dotfiles, _sidebar.md, node_modules).
	Ignore []string `yaml:"ignore,omitempty"`
	// HeadingTitles uses each document's first level-1 heading as its
	// sidebar label instead of the filename.
	HeadingTitles bool `yaml:"heading_titles,omitempty"`
}

// APIConfig locates the API model input and the generated pages output.
type APIConfig struct {
	Model  string `yaml:"model,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// ServeConfig controls the local preview server.
type ServeConfig struct {
	Port       int   `yaml:"port,omitempty"`
	LiveReload *bool `yaml:"live_reload,omitempty"`
}

// LiveReloadEnabled reports whether livereload is on (default true).
func (s ServeConfig) LiveReloadEnabled() bool {
	return s.LiveReload == nil || *s.LiveReload
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Docs == "" {
		c.Docs = "./docs"
	}
	if c.Site.Title == "" {
		c.Site.Title = "Documentation"
	}
	if c.Site.Theme == "" {
		c.Site.Theme = "vue"
	}
	if c.API.Output == "" {
		c.API.Output = "./docs/api"
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = 3000
	}
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env files if present; process environment always wins.
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, derrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, derrors.ReadFailed(configPath, err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	config.applyDefaults()
	return &config, nil
}

// LoadOrDefault loads the configuration file when it exists and falls back
// to defaults when it does not. Any other failure is still an error.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

// loadEnvFiles loads environment variables from .env/.env.local files.
// It stops at the first file godotenv accepts; a missing file is not an error.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
			return
		}
	}
}
