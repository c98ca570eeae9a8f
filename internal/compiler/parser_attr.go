package compiler

import "unicode"

// parseAttributes scans attributes until '>', '/>' or end of input.
func (p *Parser) parseAttributes() []*Attribute {
	var attrs []*Attribute
	for {
		p.s.skipWhitespace()
		if p.s.eof() || p.s.startsWith(">") || p.s.startsWith("/>") {
			return attrs
		}

		pos := p.s.position()
		raw := p.s.collectWhile(isAttrNameChar)
		if raw == "" {
			// Stray punctuation: drop one character so the loop always advances.
			p.warnings.Addf(pos, "unexpected character %q in attribute list", p.s.next())
			continue
		}

		p.s.skipWhitespace()
		attr := &Attribute{Name: NormalizeAttrName(raw), Value: Present{}, Position: pos}
		if p.s.startsWith("=") {
			p.s.next()
			p.s.skipWhitespace()
			attr.Value = p.parseAttrValue()
		}
		attrs = append(attrs, attr)
	}
}

func isAttrNameChar(r rune) bool {
	return !unicode.IsSpace(r) && r != '=' && r != '>' && r != '/'
}

// parseAttrValue scans the value after '='.
func (p *Parser) parseAttrValue() AttributeValue {
	switch {
	case p.s.startsWith("{"):
		p.s.next()
		// The first '}' ends the expression; braces do not nest.
		code := p.s.collectWhile(func(r rune) bool { return r != '}' })
		p.consume("}")
		return HostExpression{Code: code}

	case p.s.startsWith(`"`), p.s.startsWith("'"):
		quote := p.s.next()
		value := p.s.collectWhile(func(r rune) bool { return r != quote })
		p.consume(string(quote))
		return Literal{Value: value}
	}

	start := p.s.pos
	for !p.s.eof() {
		r := p.s.peek()
		if unicode.IsSpace(r) || r == '>' || p.s.startsWith("/>") {
			break
		}
		p.s.next()
	}
	return Literal{Value: p.source[start:p.s.pos]}
}

// consume advances past lit if the cursor is at it. An unterminated value
// runs to end of input, which makes the enclosing tag fall back to text.
func (p *Parser) consume(lit string) bool {
	if !p.s.startsWith(lit) {
		return false
	}
	p.s.skip(len([]rune(lit)))
	return true
}
