// Package apimodel holds the externally produced API item hierarchy
// consumed by the apidocs renderer. The model arrives already parsed and
// validated by the upstream extraction tool; this package only decodes
// it and rejects kinds outside the supported set.
package apimodel

import (
	"encoding/json"
	"os"
	"strings"

	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
)

// Item is one node of the API hierarchy.
type Item struct {
	Kind    Kind    `json:"kind"`
	Name    string  `json:"name"`
	Members []*Item `json:"members,omitempty"`

	// OverloadIndex disambiguates same-named callable siblings.
	// 0 means first (unsuffixed) overload.
	OverloadIndex   int    `json:"overloadIndex,omitempty"`
	IsStatic        bool   `json:"isStatic,omitempty"`
	IsEventProperty bool   `json:"isEventProperty,omitempty"`
	ReleaseTag      string `json:"releaseTag,omitempty"`
	Signature       string `json:"signature,omitempty"`

	Docs *DocComment `json:"docs,omitempty"`

	parent *Item
}

// DocComment is the structured documentation content attached to an item.
type DocComment struct {
	Summary    string     `json:"summary,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`
	Deprecated string     `json:"deprecated,omitempty"`
	Returns    string     `json:"returns,omitempty"`
	Params     []ParamDoc `json:"params,omitempty"`
	Examples   []string   `json:"examples,omitempty"`
}

// ParamDoc documents a single callable parameter.
type ParamDoc struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Parent returns the owning item, or nil for the model root.
func (i *Item) Parent() *Item {
	return i.parent
}

// Hierarchy returns the chain from the model root down to the item,
// inclusive.
func (i *Item) Hierarchy() []*Item {
	var chain []*Item
	for cur := i; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain
}

// UnscopedName strips an npm scope prefix ("@acme/widgets" -> "widgets").
func (i *Item) UnscopedName() string {
	if strings.HasPrefix(i.Name, "@") {
		if _, rest, ok := strings.Cut(i.Name, "/"); ok {
			return rest
		}
	}
	return i.Name
}

// Summary returns the item's summary text, or "" when undocumented.
func (i *Item) Summary() string {
	if i.Docs == nil {
		return ""
	}
	return i.Docs.Summary
}

// MembersOfKind returns direct members of the given kind in model order.
func (i *Item) MembersOfKind(kind Kind) []*Item {
	var out []*Item
	for _, m := range i.Members {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// Wire establishes parent links throughout the hierarchy. Load calls it
// automatically; callers constructing a model in memory must call it
// once on the root.
func (i *Item) Wire() {
	i.link(nil)
}

// link wires parent pointers through the hierarchy.
func (i *Item) link(parent *Item) {
	i.parent = parent
	for _, m := range i.Members {
		m.link(i)
	}
}

// validate rejects the first item whose kind falls outside the closed
// supported set. Unsupported kinds are fatal, never skipped.
func (i *Item) validate() error {
	if !i.Kind.Supported() {
		return derrors.UnsupportedKind(string(i.Kind))
	}
	for _, m := range i.Members {
		if err := m.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads and decodes an API model file, wiring parent links and
// validating every item kind.
func Load(path string) (*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.ReadFailed(path, err)
	}

	var root Item
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, derrors.ModelInvalid(path, err)
	}

	root.link(nil)
	if err := root.validate(); err != nil {
		return nil, err
	}
	return &root, nil
}
