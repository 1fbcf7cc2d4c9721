// Package sidebar renders a documentation tree into a docsify
// _sidebar.md outline.
package sidebar

import (
	"strings"

	"git.home.luguber.info/inful/docsify-tools/internal/doctree"
)

// Renderer converts a doctree into an indented bullet-list document.
// The zero value renders filename-derived labels.
type Renderer struct {
	// Label, when set, may override a leaf's display label (for example
	// with the document's first heading). Returning false falls back to
	// the filename-derived label.
	Label func(n *doctree.Node) (string, bool)
}

// Render produces the sidebar text for the given tree. Rendering is a
// pure function of the tree: the same input yields byte-identical output.
func (r *Renderer) Render(root *doctree.Node) string {
	if root.IsLeaf() {
		return r.leafLine(root)
	}
	if root.Name == "" {
		return r.renderChildren(root)
	}
	return r.renderContainer(root, "")
}

// Render renders the tree with default labels.
func Render(root *doctree.Node) string {
	return (&Renderer{}).Render(root)
}

// renderChildren renders a container's children in scan order, applying
// the folding rule: a container whose name plus ".md" matches a sibling
// leaf adopts that leaf as its link target, and the plain leaf line is
// suppressed.
func (r *Renderer) renderChildren(n *doctree.Node) string {
	containers := make(map[string]bool)
	for _, c := range n.Children {
		if !c.IsLeaf() {
			containers[c.Name] = true
		}
	}
	adopted := make(map[string]string)
	for _, c := range n.Children {
		if c.IsLeaf() {
			if base := strings.TrimSuffix(c.Name, ".md"); containers[base] {
				adopted[base] = c.Path
			}
		}
	}

	blocks := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsLeaf() {
			if containers[strings.TrimSuffix(c.Name, ".md")] {
				continue
			}
			blocks = append(blocks, r.leafLine(c))
			continue
		}
		blocks = append(blocks, r.renderContainer(c, adopted[c.Name]))
	}
	return strings.Join(blocks, "\n")
}

// renderContainer emits the heading line (linked when the container has
// adopted a sibling file) followed by its children indented two spaces.
func (r *Renderer) renderContainer(n *doctree.Node, link string) string {
	label := NormalizeName(n.Name)
	heading := "- " + label
	if link != "" {
		heading = "- [" + label + "](" + EncodePath(link) + ")"
	}
	body := r.renderChildren(n)
	if body == "" {
		return heading
	}
	return heading + "\n" + indent(body)
}

func (r *Renderer) leafLine(n *doctree.Node) string {
	label := ""
	if r.Label != nil {
		if l, ok := r.Label(n); ok {
			label = l
		}
	}
	if label == "" {
		label = NormalizeName(strings.TrimSuffix(n.Name, ".md"))
	}
	return "- [" + label + "](" + EncodePath(n.Path) + ")"
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
