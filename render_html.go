package selene

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
)

// RenderHTML writes the static HTML for v. Props are written in key order:
// true becomes a bare attribute, while false, nil and handlers are left out.
func RenderHTML(w io.Writer, v *VNode) error {
	return Lower(v).Render(w)
}

// HTML is like RenderHTML but returns the markup as a string.
func HTML(v *VNode) (string, error) {
	var sb strings.Builder
	if err := RenderHTML(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Lower converts a descriptor tree to a gomponents node so it can be
// embedded in server-rendered gomponents pages. Components are called
// as they are reached.
func Lower(v *VNode) g.Node {
	v = expand(v)
	if v == nil {
		return g.Group(nil)
	}
	switch v.Kind {
	case TextNode:
		return g.Text(v.Text)
	case FragmentNode:
		return g.Group(lowerChildren(v.Children))
	default:
		nodes := make([]g.Node, 0, len(v.Props)+len(v.Children))
		for _, k := range attributeKeys(v.Props) {
			val, kind := propAttribute(v.Props[k])
			switch kind {
			case attrBoolean:
				nodes = append(nodes, g.Attr(k))
			case attrValue:
				nodes = append(nodes, g.Attr(k, val))
			}
		}
		nodes = append(nodes, lowerChildren(v.Children)...)
		return g.El(v.Tag, nodes...)
	}
}

func lowerChildren(children []*VNode) []g.Node {
	nodes := make([]g.Node, 0, len(children))
	for _, c := range children {
		nodes = append(nodes, Lower(c))
	}
	return nodes
}
