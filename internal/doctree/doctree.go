// Package doctree builds an in-memory tree mirroring a directory of
// markdown documentation files.
package doctree

import (
	"os"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
)

// Node is one entry in the documentation tree: a directory (container)
// or a single markdown document (leaf).
type Node struct {
	// Name is the raw filesystem name; it may carry an ordering prefix
	// ("1-Guides") that is stripped at render time, never here.
	Name string
	// Path is the slash-separated logical path from the tree root,
	// computed once at construction.
	Path string
	// Children is nil for leaves. A container always has at least one
	// child; empty containers are pruned during the build.
	Children []*Node
}

// IsLeaf reports whether the node represents a single document.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Names that are always invisible to the pipeline.
var reservedNames = map[string]bool{
	"_sidebar.md": true,
}

// Builder scans a directory tree for markdown documents.
type Builder struct {
	ignore []string
}

// NewBuilder returns a Builder skipping the built-in ignore set plus
// any extra glob patterns.
func NewBuilder(ignore []string) *Builder {
	return &Builder{ignore: ignore}
}

// Build scans root and returns the tree. The root node carries the given
// label as both name and path prefix; callers typically pass "".
// An unreadable root fails the whole run.
func (b *Builder) Build(root, label string) (*Node, error) {
	node, err := b.scan(root, label, label)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (b *Builder) scan(dir, name, path string) (*Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, derrors.ReadFailed(dir, err)
	}

	node := &Node{Name: name, Path: path, Children: []*Node{}}
	for _, entry := range entries {
		if b.skip(entry.Name()) {
			continue
		}
		childPath := path + "/" + entry.Name()
		if entry.IsDir() {
			child, err := b.scan(filepath.Join(dir, entry.Name()), entry.Name(), childPath)
			if err != nil {
				return nil, err
			}
			// Directories with no qualifying documents, direct or
			// nested, are pruned silently.
			if len(child.Children) > 0 {
				node.Children = append(node.Children, child)
			}
			continue
		}
		if strings.HasSuffix(entry.Name(), ".md") {
			node.Children = append(node.Children, &Node{Name: entry.Name(), Path: childPath})
		}
	}
	return node, nil
}

// skip reports whether a directory entry is invisible to the pipeline:
// dotfiles, reserved names, vendored dependencies, and any configured
// extra glob pattern.
func (b *Builder) skip(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if reservedNames[name] {
		return true
	}
	if strings.Contains(name, "node_modules") {
		return true
	}
	for _, pattern := range b.ignore {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Walk visits every node in depth-first scan order, root first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
