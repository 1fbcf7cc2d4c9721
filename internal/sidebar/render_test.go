package sidebar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsify-tools/internal/doctree"
)

func leaf(name, path string) *doctree.Node {
	return &doctree.Node{Name: name, Path: path}
}

func container(name, path string, children ...*doctree.Node) *doctree.Node {
	return &doctree.Node{Name: name, Path: path, Children: children}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1-Guides", "Guides"},
		{"2-API", "API"},
		{"Guides", "Guides"},
		{"10-My-Section", "My Section"},
		{"My-Section", "My-Section"},
		{"intro", "intro"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			require.Equal(t, c.want, NormalizeName(c.in))
		})
	}
}

func TestRender_LeafEncodesSpaces(t *testing.T) {
	root := container("", "",
		leaf("c.md", "/a b/c.md"),
	)
	require.Equal(t, "- [c](/a%20b/c.md)", Render(root))
}

func TestRender_EndToEndScenario(t *testing.T) {
	root := container("", "",
		container("1-Guides", "/1-Guides",
			leaf("intro.md", "/1-Guides/intro.md"),
		),
		leaf("notes.md", "/notes.md"),
	)

	want := "- Guides\n" +
		"  - [intro](/1-Guides/intro.md)\n" +
		"- [notes](/notes.md)"
	require.Equal(t, want, Render(root))
}

func TestRender_FoldsContainerWithMatchingFile(t *testing.T) {
	root := container("", "",
		leaf("X.md", "/X.md"),
		container("X", "/X",
			leaf("Y.md", "/X/Y.md"),
		),
	)

	want := "- [X](/X.md)\n" +
		"  - [Y](/X/Y.md)"
	require.Equal(t, want, Render(root))
}

func TestRender_NoFoldingWithoutMatchingFile(t *testing.T) {
	root := container("", "",
		leaf("Z.md", "/Z.md"),
		container("X", "/X",
			leaf("Y.md", "/X/Y.md"),
		),
	)

	want := "- [Z](/Z.md)\n" +
		"- X\n" +
		"  - [Y](/X/Y.md)"
	require.Equal(t, want, Render(root))
}

func TestRender_FoldingIsPerContainerLevel(t *testing.T) {
	// The pairing is evaluated among siblings only: a nested container
	// folds against its own sibling file, not against files elsewhere.
	root := container("", "",
		container("guide", "/guide",
			leaf("setup.md", "/guide/setup.md"),
			container("setup", "/guide/setup",
				leaf("linux.md", "/guide/setup/linux.md"),
			),
		),
	)

	want := "- guide\n" +
		"  - [setup](/guide/setup.md)\n" +
		"    - [linux](/guide/setup/linux.md)"
	require.Equal(t, want, Render(root))
}

func TestRender_DeepNestingIndentsTwoSpacesPerLevel(t *testing.T) {
	root := container("", "",
		container("a", "/a",
			container("b", "/a/b",
				leaf("c.md", "/a/b/c.md"),
			),
		),
	)

	want := "- a\n" +
		"  - b\n" +
		"    - [c](/a/b/c.md)"
	require.Equal(t, want, Render(root))
}

func TestRender_IsIdempotent(t *testing.T) {
	root := container("", "",
		leaf("X.md", "/X.md"),
		container("X", "/X", leaf("Y.md", "/X/Y.md")),
		container("2-API", "/2-API", leaf("ref.md", "/2-API/ref.md")),
	)

	first := Render(root)
	second := Render(root)
	require.Equal(t, first, second)
}

func TestRender_LabelOverride(t *testing.T) {
	r := &Renderer{Label: func(n *doctree.Node) (string, bool) {
		if n.Name == "intro.md" {
			return "Getting Started", true
		}
		return "", false
	}}

	root := container("", "",
		leaf("intro.md", "/intro.md"),
		leaf("notes.md", "/notes.md"),
	)

	want := "- [Getting Started](/intro.md)\n" +
		"- [notes](/notes.md)"
	require.Equal(t, want, r.Render(root))
}
