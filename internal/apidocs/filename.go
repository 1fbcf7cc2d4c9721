package apidocs

import (
	"strconv"
	"strings"

	"git.home.luguber.info/inful/docsify-tools/internal/apimodel"
)

// FileName derives the output file for an item, relative to the pages
// root, walking the hierarchy from the model root down:
//
//   - root-level containers contribute nothing
//   - a package contributes its unscoped name as the first segment
//   - members that render inline on their container's page contribute a
//     "#<lowercased-name>" anchor on the parent's file instead of a segment
//   - overloaded callables append "_<overloadIndex>" (0 = unsuffixed) to
//     their own name before segment or anchor placement
//   - every other kind appends "/<name>"; the terminal file gets a ".md"
//     suffix unless an anchor was appended
func FileName(item *apimodel.Item) string {
	var segments []string
	anchor := ""
	for _, h := range item.Hierarchy() {
		if h.Kind.RootContainer() {
			continue
		}
		name := h.Name
		if h.Kind == apimodel.KindPackage {
			name = h.UnscopedName()
		}
		if h.Kind.Callable() && h.OverloadIndex > 0 {
			name += "_" + strconv.Itoa(h.OverloadIndex)
		}
		if h.Kind.InlinesOnParent() {
			anchor = strings.ToLower(name)
			continue
		}
		segments = append(segments, name)
	}

	if len(segments) == 0 {
		return indexFile
	}
	file := strings.Join(segments, "/") + ".md"
	if anchor != "" {
		return file + "#" + anchor
	}
	return file
}

// indexFile is the model root's own page.
const indexFile = "index.md"

// splitAnchor separates a derived file name from its optional anchor.
func splitAnchor(name string) (file, anchor string) {
	file, anchor, _ = strings.Cut(name, "#")
	return file, anchor
}
