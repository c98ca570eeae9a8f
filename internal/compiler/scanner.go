package compiler

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner is a rune cursor over template source. Every method that moves
// the cursor moves it forward by whole runes, keeping line and column in
// sync for diagnostics.
type scanner struct {
	filename string
	source   string
	pos      int // byte offset of the current rune
	line     int // current line (1-based)
	column   int // current column (1-based, in runes)
}

// mark is a saved cursor state used to backtrack after a failed element scan.
type mark struct {
	pos, line, column int
}

func newScanner(filename, source string) *scanner {
	return &scanner{
		filename: filename,
		source:   source,
		line:     1,
		column:   1,
	}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.source)
}

// peek returns the current rune without consuming it, or 0 at end of input.
func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.pos:])
	return r
}

// next consumes and returns the current rune.
func (s *scanner) next() rune {
	if s.eof() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s.source[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

// skip consumes n runes.
func (s *scanner) skip(n int) {
	for i := 0; i < n && !s.eof(); i++ {
		s.next()
	}
}

func (s *scanner) startsWith(prefix string) bool {
	return strings.HasPrefix(s.source[s.pos:], prefix)
}

func (s *scanner) skipWhitespace() {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.next()
	}
}

// collectWhile consumes runes while keep reports true and returns them.
func (s *scanner) collectWhile(keep func(r rune) bool) string {
	start := s.pos
	for !s.eof() && keep(s.peek()) {
		s.next()
	}
	return s.source[start:s.pos]
}

func (s *scanner) position() Position {
	return Position{File: s.filename, Line: s.line, Column: s.column}
}

func (s *scanner) save() mark {
	return mark{pos: s.pos, line: s.line, column: s.column}
}

func (s *scanner) restore(m mark) {
	s.pos, s.line, s.column = m.pos, m.line, m.column
}
