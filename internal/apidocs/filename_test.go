package apidocs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsify-tools/internal/apimodel"
)

// fixtureModel builds the hierarchy used across the derivation tests:
//
//	Model > EntryPoint > acme (Package)
//	  Widget (Class): render (Method), render_1 (Method overload), size (Property)
//	  Button (Class)
//	  createWidget (Function), createWidget_1 (Function overload)
//	  ui (Namespace): Theme (Class)
func fixtureModel() *apimodel.Item {
	root := &apimodel.Item{
		Kind: apimodel.KindModel,
		Members: []*apimodel.Item{{
			Kind: apimodel.KindEntryPoint,
			Members: []*apimodel.Item{{
				Kind: apimodel.KindPackage,
				Name: "acme",
				Docs: &apimodel.DocComment{Summary: "Widget toolkit."},
				Members: []*apimodel.Item{
					{
						Kind: apimodel.KindClass,
						Name: "Widget",
						Docs: &apimodel.DocComment{Summary: "A widget."},
						Members: []*apimodel.Item{
							{Kind: apimodel.KindMethod, Name: "render", Docs: &apimodel.DocComment{Summary: "Renders once."}},
							{Kind: apimodel.KindMethod, Name: "render", OverloadIndex: 1},
							{Kind: apimodel.KindProperty, Name: "size", IsStatic: true},
							{Kind: apimodel.KindProperty, Name: "onResize", IsEventProperty: true},
						},
					},
					{Kind: apimodel.KindClass, Name: "Button"},
					{Kind: apimodel.KindFunction, Name: "createWidget"},
					{Kind: apimodel.KindFunction, Name: "createWidget", OverloadIndex: 1},
					{
						Kind: apimodel.KindNamespace,
						Name: "ui",
						Members: []*apimodel.Item{
							{Kind: apimodel.KindClass, Name: "Theme"},
						},
					},
				},
			}},
		}},
	}
	root.Wire()
	return root
}

func pick(t *testing.T, root *apimodel.Item, names ...string) *apimodel.Item {
	t.Helper()
	item := root.Members[0].Members[0] // package
	for _, name := range names {
		var next *apimodel.Item
		for _, m := range item.Members {
			if m.Name == name {
				next = m
				break
			}
		}
		require.NotNil(t, next, "member %q not found under %q", name, item.Name)
		item = next
	}
	return item
}

func TestFileName_Derivation(t *testing.T) {
	root := fixtureModel()
	pkg := root.Members[0].Members[0]

	require.Equal(t, "index.md", FileName(root))
	// Root-level containers contribute no segments and own no page.
	require.Equal(t, "index.md", FileName(pkg.Parent()))

	require.Equal(t, "acme.md", FileName(pkg))
	require.Equal(t, "acme/Widget.md", FileName(pick(t, root, "Widget")))
	require.Equal(t, "acme/ui.md", FileName(pick(t, root, "ui")))
	require.Equal(t, "acme/ui/Theme.md", FileName(pick(t, root, "ui", "Theme")))
}

func TestFileName_InlineMembersGetAnchors(t *testing.T) {
	root := fixtureModel()
	widget := pick(t, root, "Widget")

	render := widget.Members[0]
	require.Equal(t, "acme/Widget.md#render", FileName(render))

	size := widget.Members[2]
	require.Equal(t, "acme/Widget.md#size", FileName(size))
}

func TestFileName_OverloadSuffix(t *testing.T) {
	root := fixtureModel()
	widget := pick(t, root, "Widget")

	// Overload index 0 stays unsuffixed; index 1 appends _1 to the
	// callable's qualified name before anchor generation.
	require.Equal(t, "acme/Widget.md#render", FileName(widget.Members[0]))
	require.Equal(t, "acme/Widget.md#render_1", FileName(widget.Members[1]))

	pkg := root.Members[0].Members[0]
	require.Equal(t, "acme/createWidget.md", FileName(pkg.Members[2]))
	require.Equal(t, "acme/createWidget_1.md", FileName(pkg.Members[3]))
}

func TestFileName_LowercasesAnchors(t *testing.T) {
	root := &apimodel.Item{
		Kind: apimodel.KindModel,
		Members: []*apimodel.Item{{
			Kind: apimodel.KindPackage,
			Name: "acme",
			Members: []*apimodel.Item{{
				Kind: apimodel.KindInterface,
				Name: "Options",
				Members: []*apimodel.Item{
					{Kind: apimodel.KindPropertySignature, Name: "MaxDepth"},
				},
			}},
		}},
	}
	root.Wire()

	prop := root.Members[0].Members[0].Members[0]
	require.Equal(t, "acme/Options.md#maxdepth", FileName(prop))
}

func TestFileName_ScopedPackageUsesUnscopedName(t *testing.T) {
	root := &apimodel.Item{
		Kind: apimodel.KindModel,
		Members: []*apimodel.Item{{
			Kind: apimodel.KindPackage,
			Name: "@acme/widgets",
			Members: []*apimodel.Item{
				{Kind: apimodel.KindClass, Name: "Widget"},
			},
		}},
	}
	root.Wire()

	require.Equal(t, "widgets.md", FileName(root.Members[0]))
	require.Equal(t, "widgets/Widget.md", FileName(root.Members[0].Members[0]))
}
