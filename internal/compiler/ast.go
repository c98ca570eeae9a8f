package compiler

// Node is a template tree node. The set of implementations is closed:
// every Node is either an *Element or a *Text.
type Node interface {
	node()         // marker method to seal the variant
	Pos() Position // returns the source position of the node
}

// Element represents <tag attrs>children</tag>, <tag /> or a void tag.
type Element struct {
	Tag         string
	Attributes  []*Attribute // insertion order, duplicates kept
	Children    []Node       // always empty when SelfClosing
	SelfClosing bool
	Position    Position
}

func (e *Element) node() {}
func (e *Element) Pos() Position { return e.Position }

// Text represents a run of character data exactly as scanned.
type Text struct {
	Value    string
	Position Position
}

func (t *Text) node() {}
func (t *Text) Pos() Position { return t.Position }

// Attribute is a single name/value pair on an element. Name is already
// normalized (on:click and @click both become onClick).
type Attribute struct {
	Name     string
	Value    AttributeValue
	Position Position
}

// AttributeValue is implemented by Present, Literal and HostExpression.
type AttributeValue interface {
	attrValue()
}

// Present is a boolean attribute written without a value.
type Present struct{}

// Literal is a quoted or unquoted attribute value, unescaped.
type Literal struct {
	Value string
}

// HostExpression is the raw text captured between { and the first }.
type HostExpression struct {
	Code string
}

func (Present) attrValue() {}
func (Literal) attrValue() {}
func (HostExpression) attrValue() {}
