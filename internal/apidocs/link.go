package apidocs

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/docsify-tools/internal/apimodel"
)

// Link computes the markdown link target from one item's page to
// another's: the relative path from the source page's directory to the
// target page's file, plus the target's anchor when it has one. Two
// items at different nesting depths resolve to different relative
// offsets, so this is recomputed per (source, target) pair.
func Link(from, to *apimodel.Item) string {
	fromFile, _ := splitAnchor(FileName(from))
	toFile, toAnchor := splitAnchor(FileName(to))

	rel := relative(path.Dir(fromFile), toFile)
	if toAnchor != "" {
		rel += "#" + toAnchor
	}
	return rel
}

// relative resolves target (a slash-separated file path from the pages
// root) against fromDir (a directory path from the same root).
func relative(fromDir, target string) string {
	if fromDir == "." {
		return target
	}
	fromParts := strings.Split(fromDir, "/")
	targetParts := strings.Split(target, "/")

	common := 0
	for common < len(fromParts) && common < len(targetParts)-1 && fromParts[common] == targetParts[common] {
		common++
	}

	out := make([]string, 0, len(fromParts)-common+len(targetParts)-common)
	for i := common; i < len(fromParts); i++ {
		out = append(out, "..")
	}
	out = append(out, targetParts[common:]...)
	return strings.Join(out, "/")
}
