// Package scaffold writes the on-disk shell of a new docsify site.
package scaffold

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"git.home.luguber.info/inful/docsify-tools/internal/config"
	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
)

//go:embed templates
var templatesFS embed.FS

// Init writes index.html, README.md and .nojekyll into docsRoot, creating
// the directory when needed. Existing files are only replaced with force.
func Init(docsRoot string, site config.SiteConfig, force bool) error {
	if err := os.MkdirAll(docsRoot, 0o755); err != nil {
		return derrors.WriteFailed(docsRoot, err)
	}

	index, err := renderIndex(site)
	if err != nil {
		return err
	}
	readme, err := templatesFS.ReadFile("templates/README.md")
	if err != nil {
		return derrors.InternalError("embedded template missing", err)
	}

	files := []struct {
		name    string
		content []byte
	}{
		{"index.html", index},
		{"README.md", readme},
		{".nojekyll", []byte{}},
	}
	for _, f := range files {
		target := filepath.Join(docsRoot, f.name)
		if _, err := os.Stat(target); err == nil && !force {
			return derrors.ValidationFailed(f.name, "already exists: "+target+" (use --force to overwrite)")
		}
		if err := os.WriteFile(target, f.content, 0o644); err != nil {
			return derrors.WriteFailed(target, err)
		}
	}
	return nil
}

func renderIndex(site config.SiteConfig) ([]byte, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, derrors.InternalError("embedded template invalid", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, site); err != nil {
		return nil, derrors.InternalError("index template rendering failed", err)
	}
	return buf.Bytes(), nil
}
