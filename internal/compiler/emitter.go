package compiler

import (
	"fmt"
	"strings"
)

// Emitter turns a node tree into the source text of a no-argument render
// function. The output depends only on the nodes and options, so equal
// trees always produce byte-identical text.
type Emitter struct {
	opts options
	buf  strings.Builder
}

// NewEmitter creates an Emitter with the given options.
func NewEmitter(opts ...Option) *Emitter {
	e := &Emitter{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Emit is a convenience wrapper around NewEmitter(opts...).Emit(nodes).
func Emit(nodes []Node, opts ...Option) string {
	return NewEmitter(opts...).Emit(nodes)
}

// Compile parses source and emits its render function.
func Compile(source string, opts ...Option) string {
	return Emit(Parse(source), opts...)
}

// Emit returns `() => <expr>` for the given root nodes.
func (e *Emitter) Emit(nodes []Node) string {
	e.buf.Reset()
	e.buf.WriteString("() => ")
	e.emitRoots(nodes)
	return e.buf.String()
}

// emitRoots writes the body expression. Several roots are grouped under a
// fragment so that the function always returns a single descriptor.
func (e *Emitter) emitRoots(nodes []Node) {
	switch len(nodes) {
	case 0:
		e.buf.WriteString(`("")`)
	case 1:
		e.emitNode(nodes[0])
	default:
		fmt.Fprintf(&e.buf, "%s(%s, {}, ", e.opts.factory, e.opts.fragment)
		e.emitList(nodes)
		e.buf.WriteByte(')')
	}
}

func (e *Emitter) emitNode(n Node) {
	switch n := n.(type) {
	case *Text:
		e.emitText(n)
	case *Element:
		e.emitElement(n)
	default:
		panic(fmt.Sprintf("compiler: unexpected node type %T", n))
	}
}

func (e *Emitter) emitText(t *Text) {
	if strings.Contains(t.Value, "${") {
		e.buf.WriteString(templateLiteral(t.Value))
		return
	}
	e.buf.WriteString(JSString(t.Value))
}

// emitElement writes h("tag", {attrs}[, children]).
func (e *Emitter) emitElement(elem *Element) {
	e.buf.WriteString(e.opts.factory)
	e.buf.WriteByte('(')
	e.buf.WriteString(JSString(elem.Tag))
	e.buf.WriteString(", ")
	e.emitAttributes(elem.Attributes)

	if !elem.SelfClosing && len(elem.Children) > 0 {
		e.buf.WriteString(", ")
		if len(elem.Children) == 1 {
			e.emitNode(elem.Children[0])
		} else {
			e.emitList(elem.Children)
		}
	}
	e.buf.WriteByte(')')
}

// emitList writes [a, b, ...].
func (e *Emitter) emitList(nodes []Node) {
	e.buf.WriteByte('[')
	for i, n := range nodes {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		e.emitNode(n)
	}
	e.buf.WriteByte(']')
}

// emitAttributes writes the attribute object literal. Duplicate names are
// written as they appear; which one wins is up to the runtime.
func (e *Emitter) emitAttributes(attrs []*Attribute) {
	if len(attrs) == 0 {
		e.buf.WriteString("{}")
		return
	}
	e.buf.WriteByte('{')
	for i, attr := range attrs {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		e.buf.WriteString(JSString(attr.Name))
		e.buf.WriteString(": ")
		e.buf.WriteString(attributeValue(attr.Value))
	}
	e.buf.WriteByte('}')
}

func attributeValue(v AttributeValue) string {
	switch v := v.(type) {
	case Present:
		return "true"
	case Literal:
		return JSString(v.Value)
	case HostExpression:
		return strings.TrimSpace(v.Code)
	default:
		panic(fmt.Sprintf("compiler: unexpected attribute value %T", v))
	}
}
