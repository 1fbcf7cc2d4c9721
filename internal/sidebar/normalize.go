package sidebar

import (
	"strconv"
	"strings"
)

// NormalizeName turns a raw node name into a display label. A leading
// numeric segment before the first dash encodes manual sort order
// ("1-Guides") and is dropped; remaining dashes become spaces. Names
// without a numeric prefix pass through unchanged.
func NormalizeName(name string) string {
	first, rest, found := strings.Cut(name, "-")
	if !found {
		return name
	}
	if _, err := strconv.ParseFloat(first, 64); err != nil {
		return name
	}
	return strings.ReplaceAll(rest, "-", " ")
}

// EncodePath percent-encodes literal spaces in a logical path. No other
// characters are escaped; docsify resolves the rest itself.
func EncodePath(path string) string {
	return strings.ReplaceAll(path, " ", "%20")
}
