// Package apidocs renders an API item hierarchy into per-symbol markdown
// pages with cross-links and categorized member tables.
package apidocs

import (
	"fmt"
	"io"
	"path"
	"strings"

	"git.home.luguber.info/inful/docsify-tools/internal/apimodel"
	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
)

// kindNoun is the noun shown after the item name in page headings.
func kindNoun(k apimodel.Kind) string {
	switch k {
	case apimodel.KindPackage:
		return "package"
	case apimodel.KindNamespace:
		return "namespace"
	case apimodel.KindClass:
		return "class"
	case apimodel.KindInterface:
		return "interface"
	case apimodel.KindEnum:
		return "enum"
	case apimodel.KindFunction:
		return "function"
	case apimodel.KindMethod, apimodel.KindMethodSignature:
		return "method"
	case apimodel.KindProperty, apimodel.KindPropertySignature:
		return "property"
	case apimodel.KindTypeAlias:
		return "type alias"
	case apimodel.KindVariable:
		return "variable"
	}
	return string(k)
}

func displayName(item *apimodel.Item) string {
	if item.Kind == apimodel.KindPackage {
		return item.UnscopedName()
	}
	return item.Name
}

// memberCategories fixes the order of the per-kind tables on package and
// namespace pages.
var memberCategories = []struct {
	title  string
	column string
	kind   apimodel.Kind
}{
	{"Classes", "Class", apimodel.KindClass},
	{"Enumerations", "Enumeration", apimodel.KindEnum},
	{"Functions", "Function", apimodel.KindFunction},
	{"Interfaces", "Interface", apimodel.KindInterface},
	{"Namespaces", "Namespace", apimodel.KindNamespace},
	{"Variables", "Variable", apimodel.KindVariable},
	{"Type Aliases", "Type Alias", apimodel.KindTypeAlias},
}

type pageRenderer struct {
	item *apimodel.Item
}

// RenderPage renders the full page for an item that owns one. Kinds
// outside the page-owning set are a dispatch gap and fail the run.
func RenderPage(item *apimodel.Item) (string, error) {
	var b strings.Builder
	r := &pageRenderer{item: item}

	r.breadcrumb(&b)
	fmt.Fprintf(&b, "# %s %s\n\n", displayName(item), kindNoun(item.Kind))
	writeBeta(&b, item)
	writeDeprecated(&b, item)
	writeSummary(&b, item)

	switch item.Kind {
	case apimodel.KindPackage, apimodel.KindNamespace:
		writeRemarks(&b, item)
		writeExamples(&b, item)
		for _, cat := range memberCategories {
			r.memberTable(&b, cat.title, cat.column, item.MembersOfKind(cat.kind))
		}
	case apimodel.KindClass:
		writeSignature(&b, item)
		writeRemarks(&b, item)
		writeExamples(&b, item)
		events, properties, methods := splitClassMembers(item)
		r.modifierTable(&b, "Events", "Event", events)
		r.modifierTable(&b, "Properties", "Property", properties)
		r.modifierTable(&b, "Methods", "Method", methods)
		// Class member details follow all tables as anchored sections.
		for _, m := range item.Members {
			if m.Kind.InlinesOnParent() {
				r.memberDetail(&b, m)
			}
		}
	case apimodel.KindInterface:
		writeSignature(&b, item)
		writeRemarks(&b, item)
		writeExamples(&b, item)
		// Interfaces inline every member's full detail directly below
		// its table; classes keep details after all tables. The
		// asymmetry is deliberate.
		events, properties, methods := splitClassMembers(item)
		r.modifierTable(&b, "Events", "Event", events)
		for _, m := range events {
			r.memberDetail(&b, m)
		}
		r.modifierTable(&b, "Properties", "Property", properties)
		for _, m := range properties {
			r.memberDetail(&b, m)
		}
		r.modifierTable(&b, "Methods", "Method", methods)
		for _, m := range methods {
			r.memberDetail(&b, m)
		}
	case apimodel.KindFunction:
		writeSignature(&b, item)
		writeParameters(&b, item)
		writeReturns(&b, item)
		writeRemarks(&b, item)
		writeExamples(&b, item)
	case apimodel.KindEnum, apimodel.KindVariable, apimodel.KindTypeAlias:
		writeSignature(&b, item)
		writeRemarks(&b, item)
		writeExamples(&b, item)
	default:
		return "", derrors.UnsupportedKind(string(item.Kind))
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// RenderIndex renders the model root page listing packages.
func RenderIndex(root *apimodel.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# API Reference\n\n")

	var packages []*apimodel.Item
	var collect func(*apimodel.Item)
	collect = func(item *apimodel.Item) {
		if item.Kind == apimodel.KindPackage {
			packages = append(packages, item)
			return
		}
		for _, m := range item.Members {
			collect(m)
		}
	}
	collect(root)

	r := &pageRenderer{item: root}
	r.memberTable(&b, "Packages", "Package", packages)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// breadcrumb emits the Home link plus one link per ancestor; root-level
// container kinds are elided and the page's own item stays plain text.
func (r *pageRenderer) breadcrumb(w io.Writer) {
	ownFile, _ := splitAnchor(FileName(r.item))
	parts := []string{fmt.Sprintf("[Home](%s)", relative(path.Dir(ownFile), indexFile))}
	for _, h := range r.item.Hierarchy() {
		if h.Kind.RootContainer() {
			continue
		}
		if h == r.item {
			parts = append(parts, displayName(h))
			break
		}
		parts = append(parts, fmt.Sprintf("[%s](%s)", displayName(h), Link(r.item, h)))
	}
	fmt.Fprintf(w, "%s\n\n", strings.Join(parts, " &gt; "))
}

// memberTable emits a two-column table; it is omitted entirely when it
// would have zero rows.
func (r *pageRenderer) memberTable(w io.Writer, title, column string, members []*apimodel.Item) {
	if len(members) == 0 {
		return
	}
	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintf(w, "| %s | Description |\n", column)
	fmt.Fprintf(w, "| --- | --- |\n")
	for _, m := range members {
		fmt.Fprintf(w, "| [%s](%s) | %s |\n", displayName(m), Link(r.item, m), tableDescription(m))
	}
	fmt.Fprintln(w)
}

// modifierTable is the class/interface member table variant carrying a
// Modifiers column.
func (r *pageRenderer) modifierTable(w io.Writer, title, column string, members []*apimodel.Item) {
	if len(members) == 0 {
		return
	}
	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintf(w, "| %s | Modifiers | Description |\n", column)
	fmt.Fprintf(w, "| --- | --- | --- |\n")
	for _, m := range members {
		modifiers := ""
		if m.IsStatic {
			modifiers = "static"
		}
		fmt.Fprintf(w, "| [%s](%s) | %s | %s |\n", anchorName(m), Link(r.item, m), modifiers, tableDescription(m))
	}
	fmt.Fprintln(w)
}

// memberDetail emits the anchored detail section for an inline member.
// The heading text is exactly the anchor name so the generated fragment
// matches the filename derivation rule.
func (r *pageRenderer) memberDetail(w io.Writer, m *apimodel.Item) {
	fmt.Fprintf(w, "### %s\n\n", anchorName(m))
	writeBeta(w, m)
	writeDeprecated(w, m)
	writeSummary(w, m)
	writeSignature(w, m)
	writeParameters(w, m)
	writeReturns(w, m)
	writeExamples(w, m)
}

// anchorName is the member's name with its overload suffix, matching the
// anchor produced by FileName.
func anchorName(m *apimodel.Item) string {
	name := m.Name
	if m.Kind.Callable() && m.OverloadIndex > 0 {
		name = fmt.Sprintf("%s_%d", name, m.OverloadIndex)
	}
	return name
}

func splitClassMembers(item *apimodel.Item) (events, properties, methods []*apimodel.Item) {
	for _, m := range item.Members {
		switch m.Kind {
		case apimodel.KindProperty, apimodel.KindPropertySignature:
			if m.IsEventProperty {
				events = append(events, m)
			} else {
				properties = append(properties, m)
			}
		case apimodel.KindMethod, apimodel.KindMethodSignature:
			methods = append(methods, m)
		}
	}
	return events, properties, methods
}

func writeSummary(w io.Writer, item *apimodel.Item) {
	if s := item.Summary(); s != "" {
		fmt.Fprintf(w, "%s\n\n", s)
	}
}

func writeDeprecated(w io.Writer, item *apimodel.Item) {
	if item.Docs != nil && item.Docs.Deprecated != "" {
		fmt.Fprintf(w, "> Warning: This API is deprecated. %s\n\n", item.Docs.Deprecated)
	}
}

func writeBeta(w io.Writer, item *apimodel.Item) {
	if item.ReleaseTag == "beta" {
		fmt.Fprintf(w, "> This API is in beta and may change without notice.\n\n")
	}
}

func writeSignature(w io.Writer, item *apimodel.Item) {
	if item.Signature == "" {
		return
	}
	fmt.Fprintf(w, "**Signature:**\n\n```typescript\n%s\n```\n\n", item.Signature)
}

func writeRemarks(w io.Writer, item *apimodel.Item) {
	if item.Docs != nil && item.Docs.Remarks != "" {
		fmt.Fprintf(w, "## Remarks\n\n%s\n\n", item.Docs.Remarks)
	}
}

func writeParameters(w io.Writer, item *apimodel.Item) {
	if item.Docs == nil || len(item.Docs.Params) == 0 {
		return
	}
	fmt.Fprintf(w, "**Parameters:**\n\n")
	fmt.Fprintf(w, "| Parameter | Description |\n")
	fmt.Fprintf(w, "| --- | --- |\n")
	for _, p := range item.Docs.Params {
		fmt.Fprintf(w, "| %s | %s |\n", p.Name, escapeCell(p.Description))
	}
	fmt.Fprintln(w)
}

func writeReturns(w io.Writer, item *apimodel.Item) {
	if item.Docs != nil && item.Docs.Returns != "" {
		fmt.Fprintf(w, "**Returns:**\n\n%s\n\n", item.Docs.Returns)
	}
}

func writeExamples(w io.Writer, item *apimodel.Item) {
	if item.Docs == nil {
		return
	}
	for i, example := range item.Docs.Examples {
		if len(item.Docs.Examples) == 1 {
			fmt.Fprintf(w, "## Example\n\n")
		} else {
			fmt.Fprintf(w, "## Example %d\n\n", i+1)
		}
		fmt.Fprintf(w, "%s\n\n", example)
	}
}

// tableDescription builds a single-line table cell from the member's
// summary, with beta markers and escaped pipes.
func tableDescription(item *apimodel.Item) string {
	desc := escapeCell(item.Summary())
	if item.ReleaseTag == "beta" {
		desc = strings.TrimSpace("**(BETA)** " + desc)
	}
	if item.Docs != nil && item.Docs.Deprecated != "" {
		desc = strings.TrimSpace(desc + " **(DEPRECATED)**")
	}
	return desc
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
