package compiler

import "strings"

// Parser scans template source into a node tree. Parsing never fails:
// anything that cannot be read as markup is kept as text, and irregularities
// are recorded as warnings instead.
type Parser struct {
	filename string
	source   string
	s        *scanner
	warnings *WarningList
}

// NewParser creates a Parser for the given source. The filename is only
// used in warning positions and may be empty.
func NewParser(filename, source string) *Parser {
	return &Parser{
		filename: filename,
		source:   source,
		warnings: NewWarningList(),
	}
}

// Parse is a convenience wrapper that parses source and discards warnings.
func Parse(source string) []Node {
	return NewParser("", source).Parse()
}

// Parse scans the whole source and returns the root nodes in source order.
// Calling Parse again rescans from the beginning.
func (p *Parser) Parse() []Node {
	p.s = newScanner(p.filename, p.source)
	p.warnings = NewWarningList()

	p.s.skipWhitespace()
	nodes := p.parseNodes()

	// parseNodes only stops early on a closer nobody opened; everything
	// after it is dropped.
	if !p.s.eof() {
		pos := p.s.position()
		p.warnings.Addf(pos, "stray closing tag </%s>, ignoring the rest of the template", p.peekCloserName())
	}
	return nodes
}

// Warnings returns the diagnostics collected by the last call to Parse.
func (p *Parser) Warnings() *WarningList {
	return p.warnings
}

// parseNodes parses sibling nodes until end of input or a closing tag marker.
// The caller is responsible for consuming the closer.
func (p *Parser) parseNodes() []Node {
	var nodes []Node
	for !p.s.eof() {
		if p.s.startsWith("</") {
			break
		}

		if p.s.startsWith("<") {
			start := p.s.save()
			pos := p.s.position()
			seen := p.warnings.Len()
			if elem := p.parseElement(); elem != nil {
				nodes = append(nodes, elem)
				continue
			}

			// Not a tag: keep the '<' and what follows it as text.
			p.s.restore(start)
			p.warnings.truncate(seen)
			p.warnings.Addf(pos, "unparseable tag, treated as text")
			p.s.next()
			text := "<" + p.collectText()
			nodes = append(nodes, &Text{Value: text, Position: pos})
			continue
		}

		pos := p.s.position()
		text := p.collectText()
		if strings.TrimSpace(text) != "" {
			nodes = append(nodes, &Text{Value: text, Position: pos})
		}
	}
	return nodes
}

// collectText consumes characters up to the next '<' or end of input.
func (p *Parser) collectText() string {
	return p.s.collectWhile(func(r rune) bool { return r != '<' })
}

// parseElement parses an element starting at '<'. It returns nil when the
// open tag is malformed; the cursor is then left wherever scanning stopped
// and the caller backtracks.
func (p *Parser) parseElement() *Element {
	if !p.s.startsWith("<") || p.s.startsWith("</") {
		return nil
	}
	pos := p.s.position()
	p.s.next() // '<'
	p.s.skipWhitespace()

	tag := p.parseTagName()
	if tag == "" {
		return nil
	}

	attrs := p.parseAttributes()
	p.s.skipWhitespace()

	if p.s.startsWith("/>") {
		p.s.skip(2)
		return &Element{
			Tag:         tag,
			Attributes:  attrs,
			SelfClosing: true,
			Position:    pos,
		}
	}

	if !p.s.startsWith(">") {
		return nil
	}
	p.s.next()

	elem := &Element{
		Tag:        tag,
		Attributes: attrs,
		Position:   pos,
	}
	if IsVoidElement(tag) {
		elem.SelfClosing = true
		return elem
	}

	elem.Children = p.parseNodes()
	p.parseClosingTag(elem)
	return elem
}

// parseClosingTag consumes a </name ...> closer if one is present. The name
// is not required to match the open tag.
func (p *Parser) parseClosingTag(elem *Element) {
	if !p.s.startsWith("</") {
		p.warnings.Addf(elem.Position, "unclosed element <%s>", elem.Tag)
		return
	}
	pos := p.s.position()
	p.s.skip(2)
	p.s.skipWhitespace()
	name := p.parseTagName()
	p.s.collectWhile(func(r rune) bool { return r != '>' })
	if p.s.startsWith(">") {
		p.s.next()
	}
	if name != elem.Tag {
		p.warnings.Addf(pos, "mismatched closing tag </%s>, expected </%s>", name, elem.Tag)
	}
}

// peekCloserName reads the name of the closer at the cursor without consuming it.
func (p *Parser) peekCloserName() string {
	m := p.s.save()
	defer p.s.restore(m)
	p.s.skip(2)
	p.s.skipWhitespace()
	return p.parseTagName()
}

func (p *Parser) parseTagName() string {
	return p.s.collectWhile(isTagNameChar)
}

// isTagNameChar reports whether r may appear in a tag name.
func isTagNameChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == ':':
		return true
	}
	return false
}
