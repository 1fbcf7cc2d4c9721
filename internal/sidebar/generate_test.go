package sidebar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_WritesSidebarAtDocsRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "1-Guides"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2-API"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "1-Guides", "intro.md"), []byte("# Intro"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("# Notes"), 0o644))

	count, err := Generate(root, Options{})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	content, err := os.ReadFile(filepath.Join(root, FileName))
	require.NoError(t, err)
	want := "- Guides\n" +
		"  - [intro](/1-Guides/intro.md)\n" +
		"- [notes](/notes.md)"
	require.Equal(t, want, string(content))
}

func TestGenerate_OverwritesPriorSidebar(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("- stale"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "doc.md"), []byte("# Doc"), 0o644))

	_, err := Generate(root, Options{})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, FileName))
	require.NoError(t, err)
	require.Equal(t, "- [doc](/doc.md)", string(content))
}

func TestGenerate_HeadingTitles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "intro.md"), []byte("# Getting Started\n\nHello.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "plain.md"), []byte("no heading here\n"), 0o644))

	_, err := Generate(root, Options{HeadingTitles: true})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, FileName))
	require.NoError(t, err)
	want := "- [Getting Started](/intro.md)\n" +
		"- [plain](/plain.md)"
	require.Equal(t, want, string(content))
}

func TestGenerate_MissingRootFails(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "missing"), Options{})
	require.Error(t, err)
}
