package selene

import (
	"errors"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/grindlemire/selene/internal/debug"
)

// ErrNilContainer is returned when rendering into a nil node.
var ErrNilContainer = errors.New("selene: render container is nil")

// DOMRenderer keeps an *html.Node document in sync with descriptor trees.
// Event handlers found in props are held by the renderer, keyed by node,
// and invoked through Dispatch.
type DOMRenderer struct {
	mu        sync.Mutex
	listeners map[*html.Node]map[string]func()
}

// NewDOMRenderer creates a renderer with no registered listeners.
func NewDOMRenderer() *DOMRenderer {
	return &DOMRenderer{listeners: make(map[*html.Node]map[string]func())}
}

// Render reconciles the children of container with v. A fragment
// descriptor contributes its children directly, and components are called
// as they are reached. Nodes that already match (same kind, same tag) are
// patched in place; everything else is replaced.
func (r *DOMRenderer) Render(v *VNode, container *html.Node) error {
	if container == nil {
		return ErrNilContainer
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reconcileChildren(container, splice(nil, v))
	return nil
}

// Dispatch runs the handler registered for event on node. It reports
// whether a handler was found.
func (r *DOMRenderer) Dispatch(node *html.Node, event string) bool {
	r.mu.Lock()
	fn := r.listeners[node][strings.ToLower(event)]
	r.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// ReactiveRender renders view into container inside an effect, so the
// container is re-rendered whenever a signal read through the scope changes.
func (r *DOMRenderer) ReactiveRender(rt *Runtime, view func(sc *Scope) *VNode, container *html.Node) Stop {
	return rt.Effect(func(sc *Scope) {
		if err := r.Render(view(sc), container); err != nil {
			debug.Log("reactive render: %v", err)
		}
	})
}

// splice appends v to dst, calling components and replacing fragments by
// their children.
func splice(dst []*VNode, v *VNode) []*VNode {
	v = expand(v)
	if v == nil {
		return dst
	}
	if v.Kind != FragmentNode {
		return append(dst, v)
	}
	for _, c := range v.Children {
		dst = splice(dst, c)
	}
	return dst
}

func (r *DOMRenderer) reconcileChildren(parent *html.Node, desired []*VNode) {
	var existing []*html.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		existing = append(existing, c)
	}

	for i, d := range desired {
		if i >= len(existing) {
			parent.AppendChild(r.create(d))
			continue
		}
		cur := existing[i]
		if sameNode(cur, d) {
			r.patch(cur, d)
			continue
		}
		parent.InsertBefore(r.create(d), cur)
		r.remove(parent, cur)
	}
	for _, cur := range existing[min(len(desired), len(existing)):] {
		r.remove(parent, cur)
	}
}

func sameNode(n *html.Node, v *VNode) bool {
	switch v.Kind {
	case TextNode:
		return n.Type == html.TextNode
	case ElementNode:
		return n.Type == html.ElementNode && n.Data == v.Tag
	}
	return false
}

func (r *DOMRenderer) create(v *VNode) *html.Node {
	if v.Kind == TextNode {
		return &html.Node{Type: html.TextNode, Data: v.Text}
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     v.Tag,
		DataAtom: atom.Lookup([]byte(v.Tag)),
	}
	r.patch(n, v)
	return n
}

func (r *DOMRenderer) patch(n *html.Node, v *VNode) {
	if v.Kind == TextNode {
		n.Data = v.Text
		return
	}

	var attrs []html.Attribute
	var handlers map[string]func()
	for _, k := range attributeKeys(v.Props) {
		val := v.Props[k]
		if fn, ok := val.(func()); ok {
			if event, ok := eventName(k); ok {
				if handlers == nil {
					handlers = make(map[string]func())
				}
				handlers[event] = fn
				continue
			}
		}
		s, kind := propAttribute(val)
		switch kind {
		case attrBoolean:
			attrs = append(attrs, html.Attribute{Key: k})
		case attrValue:
			attrs = append(attrs, html.Attribute{Key: k, Val: s})
		}
	}
	n.Attr = attrs
	if handlers == nil {
		delete(r.listeners, n)
	} else {
		r.listeners[n] = handlers
	}

	var children []*VNode
	for _, c := range v.Children {
		children = splice(children, c)
	}
	r.reconcileChildren(n, children)
}

func (r *DOMRenderer) remove(parent, n *html.Node) {
	parent.RemoveChild(n)
	r.forget(n)
}

// forget drops listeners for n and its subtree.
func (r *DOMRenderer) forget(n *html.Node) {
	delete(r.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.forget(c)
	}
}

// ParseDocument parses an HTML document.
func ParseDocument(rd io.Reader) (*html.Node, error) {
	return html.Parse(rd)
}

// FindByID returns the first element under n whose id attribute equals id,
// or nil.
func FindByID(n *html.Node, id string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// InnerHTML renders the children of n.
func InnerHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
