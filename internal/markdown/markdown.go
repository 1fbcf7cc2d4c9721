// Package markdown provides goldmark-based analysis helpers for
// documentation source files.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading parses a Markdown body and returns the text of the first
// level-1 heading, if any.
//
// This is an analysis API; it does not attempt to re-render Markdown.
func FirstHeading(body []byte) (string, bool) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var title string
	found := false
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || found {
			return gmast.WalkContinue, nil
		}
		heading, ok := n.(*gmast.Heading)
		if !ok || heading.Level != 1 {
			return gmast.WalkContinue, nil
		}
		title = headingText(heading, body)
		found = true
		return gmast.WalkStop, nil
	})

	if !found || title == "" {
		return "", false
	}
	return title, true
}

// headingText collects the plain text of a heading, flattening any inline
// markup (emphasis, code spans) it contains.
func headingText(heading *gmast.Heading, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(heading, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Text:
			sb.Write(node.Segment.Value(source))
		case *gmast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*gmast.Text); ok {
					sb.Write(t.Segment.Value(source))
				}
			}
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
