package sidebar

import (
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsify-tools/internal/doctree"
	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
	"git.home.luguber.info/inful/docsify-tools/internal/markdown"
)

// FileName is the sidebar file docsify loads from the docs root.
const FileName = "_sidebar.md"

// Options controls a sidebar generation run.
type Options struct {
	// Ignore holds extra glob patterns skipped during the directory scan.
	Ignore []string
	// HeadingTitles uses each document's first level-1 heading as its
	// label instead of the filename.
	HeadingTitles bool
}

// Generate builds the tree under docsRoot, renders it, and writes
// _sidebar.md at the docs root, overwriting any prior content. It returns
// the number of documents in the sidebar. Both the sidebar command and
// the preview server's rebuild path go through here, so folding behavior
// cannot diverge between the two.
func Generate(docsRoot string, opts Options) (int, error) {
	tree, err := doctree.NewBuilder(opts.Ignore).Build(docsRoot, "")
	if err != nil {
		return 0, err
	}

	r := &Renderer{}
	if opts.HeadingTitles {
		r.Label = headingLabel(docsRoot)
	}
	content := r.Render(tree)

	target := filepath.Join(docsRoot, FileName)
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return 0, derrors.WriteFailed(target, err)
	}

	count := 0
	tree.Walk(func(n *doctree.Node) {
		if n.IsLeaf() {
			count++
		}
	})
	return count, nil
}

// headingLabel returns a label function reading each document's first
// level-1 heading. Unreadable or heading-less documents fall back to the
// filename label rather than failing the run.
func headingLabel(docsRoot string) func(n *doctree.Node) (string, bool) {
	return func(n *doctree.Node) (string, bool) {
		rel := strings.TrimPrefix(n.Path, "/")
		body, err := os.ReadFile(filepath.Join(docsRoot, filepath.FromSlash(rel)))
		if err != nil {
			return "", false
		}
		return markdown.FirstHeading(body)
	}
}
