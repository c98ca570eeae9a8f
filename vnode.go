package selene

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// NodeKind identifies what a VNode describes.
type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
	FragmentNode
	ComponentNode
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case FragmentNode:
		return "fragment"
	case ComponentNode:
		return "component"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Fragment is the tag that groups several roots without a wrapping
// element. Compiled templates pass it as the first argument to H.
// Template tag names cannot contain '#', so it never collides with markup.
const Fragment = "#fragment"

// Component is a function that renders props into a descriptor. It is
// called when the tree is rendered, not when the descriptor is built.
type Component func(props Props) *VNode

// ChildrenProp is the key under which a component receives the children
// it was given. It is never written as an attribute.
const ChildrenProp = "children"

// Props holds element properties. Keys starting with "on" whose value is a
// func() are event handlers; everything else becomes an attribute.
type Props map[string]any

// VNode is an element descriptor: a lightweight, DOM-independent
// description of a UI node.
type VNode struct {
	Kind      NodeKind
	Tag       string // element tag; empty for other kinds
	Props     Props
	Children  []*VNode
	Text      string    // content of a text node
	Component Component // set for component nodes
}

// H creates an element descriptor. Children may be strings, numbers,
// *VNode, []*VNode, []any or components; nested slices are flattened and
// nil or boolean children are skipped.
//
//	H("ul", nil, H("li", nil, "one"), H("li", nil, "two"))
//	H(Fragment, nil, H("a", nil), H("b", nil))
func H(tag string, props Props, children ...any) *VNode {
	if props == nil {
		props = Props{}
	}
	v := &VNode{Kind: ElementNode, Tag: tag, Props: props}
	if tag == Fragment {
		v.Kind = FragmentNode
		v.Tag = ""
	}
	for _, c := range children {
		v.Children = appendChild(v.Children, c)
	}
	return v
}

// HC creates a component descriptor. The component runs at render time
// with a copy of props that also holds the flattened children under
// ChildrenProp.
//
//	card := func(p Props) *VNode { return H("section", nil, p["children"]) }
//	HC(card, nil, H("p", nil, "body"))
func HC(c Component, props Props, children ...any) *VNode {
	if props == nil {
		props = Props{}
	}
	v := &VNode{Kind: ComponentNode, Props: props, Component: c}
	for _, child := range children {
		v.Children = appendChild(v.Children, child)
	}
	return v
}

// expand calls component descriptors until it reaches one that is not a
// component. A nil component, or one that renders nil, expands to nil.
func expand(v *VNode) *VNode {
	for v != nil && v.Kind == ComponentNode {
		if v.Component == nil {
			return nil
		}
		props := make(Props, len(v.Props)+1)
		maps.Copy(props, v.Props)
		if len(v.Children) > 0 {
			props[ChildrenProp] = v.Children
		}
		v = v.Component(props)
	}
	return v
}

// Text creates a text descriptor.
func Text(s string) *VNode {
	return &VNode{Kind: TextNode, Text: s}
}

func appendChild(dst []*VNode, c any) []*VNode {
	switch c := c.(type) {
	case nil, bool:
		return dst
	case *VNode:
		if c == nil {
			return dst
		}
		return append(dst, c)
	case []*VNode:
		for _, child := range c {
			dst = appendChild(dst, child)
		}
		return dst
	case []any:
		for _, child := range c {
			dst = appendChild(dst, child)
		}
		return dst
	case Component:
		return append(dst, HC(c, nil))
	case func(Props) *VNode:
		return append(dst, HC(c, nil))
	case string:
		return append(dst, Text(c))
	case fmt.Stringer:
		return append(dst, Text(c.String()))
	default:
		return append(dst, Text(fmt.Sprint(c)))
	}
}

// String returns a compact, deterministic representation of the tree,
// useful in tests and debug logs.
func (v *VNode) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v *VNode) write(sb *strings.Builder) {
	if v == nil {
		sb.WriteString("<nil>")
		return
	}
	switch v.Kind {
	case TextNode:
		fmt.Fprintf(sb, "%q", v.Text)
		return
	case FragmentNode:
		sb.WriteString("<>")
	case ComponentNode:
		sb.WriteString("<component")
		for _, k := range sortedKeys(v.Props) {
			fmt.Fprintf(sb, " %s=%v", k, describeProp(v.Props[k]))
		}
		sb.WriteString(">")
	default:
		sb.WriteString("<" + v.Tag)
		for _, k := range sortedKeys(v.Props) {
			fmt.Fprintf(sb, " %s=%v", k, describeProp(v.Props[k]))
		}
		sb.WriteString(">")
	}
	for _, c := range v.Children {
		c.write(sb)
	}
	switch v.Kind {
	case FragmentNode:
		sb.WriteString("</>")
	case ComponentNode:
		sb.WriteString("</component>")
	default:
		sb.WriteString("</" + v.Tag + ">")
	}
}

func describeProp(val any) string {
	if isFunc(val) {
		return "func"
	}
	if s, ok := val.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(val)
}

func sortedKeys(p Props) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
