package server

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
)

// liveReloadScript is the client half of the SSE reload channel, injected
// into index.html while previewing.
const liveReloadScript = `new EventSource('/livereload').addEventListener('message', function () { location.reload(); });`

// InjectLiveReload parses an HTML document and appends the livereload
// client script to its <body>. Documents without a body pass through
// unchanged.
func InjectLiveReload(doc []byte) ([]byte, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, derrors.ServerError("failed to parse index.html", err)
	}

	body := findElement(root, atom.Body)
	if body == nil {
		return doc, nil
	}

	script := &html.Node{Type: html.ElementNode, Data: "script", DataAtom: atom.Script}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: liveReloadScript})
	body.AppendChild(script)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, derrors.ServerError("failed to render index.html", err)
	}
	return buf.Bytes(), nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
