package apidocs

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docsify-tools/internal/apimodel"
	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
	"git.home.luguber.info/inful/docsify-tools/internal/logfields"
)

// Generator writes one markdown page per API item into an output
// directory.
type Generator struct {
	outputDir string
}

// NewGenerator creates a generator rooted at outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: filepath.Clean(outputDir)}
}

// Generate clears the output directory and emits the index page plus one
// page per page-owning item. It returns the number of pages written.
// A mid-run failure leaves whatever subset of pages completed, never a
// mix with a prior run's content.
func (g *Generator) Generate(root *apimodel.Item) (int, error) {
	if err := os.RemoveAll(g.outputDir); err != nil {
		return 0, derrors.WriteFailed(g.outputDir, err)
	}
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return 0, derrors.WriteFailed(g.outputDir, err)
	}

	if err := g.writePage(indexFile, RenderIndex(root)); err != nil {
		return 0, err
	}
	count := 1

	var emit func(item *apimodel.Item) error
	emit = func(item *apimodel.Item) error {
		if item.Kind.HasOwnPage() {
			page, err := RenderPage(item)
			if err != nil {
				return err
			}
			file, _ := splitAnchor(FileName(item))
			if err := g.writePage(file, page); err != nil {
				return err
			}
			count++
			slog.Debug("API page written", logfields.File(file), logfields.Kind(string(item.Kind)))
		}
		for _, m := range item.Members {
			// Inline members render on their container's page.
			if m.Kind.InlinesOnParent() {
				continue
			}
			if err := emit(m); err != nil {
				return err
			}
		}
		return nil
	}
	if err := emit(root); err != nil {
		return 0, err
	}
	return count, nil
}

func (g *Generator) writePage(relFile, content string) error {
	target := filepath.Join(g.outputDir, filepath.FromSlash(relFile))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return derrors.WriteFailed(target, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return derrors.WriteFailed(target, err)
	}
	return nil
}
