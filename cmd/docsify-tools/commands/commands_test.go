package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitCmd_ScaffoldsSiteAndConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "docsify.yaml")
	docs := filepath.Join(dir, "docs")

	cmd := &InitCmd{Docs: docs}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: cfgPath}))

	require.FileExists(t, cfgPath)
	require.FileExists(t, filepath.Join(docs, "index.html"))
	require.FileExists(t, filepath.Join(docs, "README.md"))
	require.FileExists(t, filepath.Join(docs, ".nojekyll"))
}

func TestInitCmd_RefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "docsify.yaml")

	cmd := &InitCmd{Docs: filepath.Join(dir, "docs")}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: cfgPath}))
	require.Error(t, cmd.Run(&Global{}, &CLI{Config: cfgPath}))

	forced := &InitCmd{Docs: filepath.Join(dir, "docs"), Force: true}
	require.NoError(t, forced.Run(&Global{}, &CLI{Config: cfgPath}))
}

func TestSidebarCmd_GeneratesSidebar(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "Guides"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "Intro.md"), []byte("# Intro\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "Guides", "Setup.md"), []byte("# Setup\n"), 0o644))

	cmd := &SidebarCmd{Docs: docs}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: filepath.Join(dir, "missing.yaml")}))

	data, err := os.ReadFile(filepath.Join(docs, "_sidebar.md"))
	require.NoError(t, err)
	require.Contains(t, string(data), "- [Intro](/Intro.md)")
	require.Contains(t, string(data), "- [Setup](/Guides/Setup.md)")
}

func TestApidocsCmd_GeneratesPages(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	output := filepath.Join(dir, "api")

	model := `{
		"kind": "Model",
		"name": "model",
		"members": [{
			"kind": "EntryPoint",
			"name": "",
			"members": [{
				"kind": "Package",
				"name": "acme",
				"members": [{
					"kind": "Class",
					"name": "Widget",
					"docs": {"summary": "A widget."}
				}]
			}]
		}]
	}`
	require.NoError(t, os.WriteFile(modelPath, []byte(model), 0o644))

	cmd := &ApidocsCmd{Model: modelPath, Output: output}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: filepath.Join(dir, "missing.yaml")}))

	require.FileExists(t, filepath.Join(output, "index.md"))
	require.FileExists(t, filepath.Join(output, "acme.md"))
	require.FileExists(t, filepath.Join(output, "acme", "Widget.md"))
}

func TestApidocsCmd_RequiresModelPath(t *testing.T) {
	dir := t.TempDir()
	cmd := &ApidocsCmd{}
	err := cmd.Run(&Global{}, &CLI{Config: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
}
