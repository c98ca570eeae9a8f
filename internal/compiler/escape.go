package compiler

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// voidElements are tags that never have children, whether or not the
// template writes them with a trailing slash.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement reports whether tag is a void element. Matching is exact:
// "IMG" is not void.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// NormalizeAttrName rewrites the event binding shorthands on:name and @name
// to the handler property onName. Other names are returned unchanged.
func NormalizeAttrName(name string) string {
	if rest, ok := strings.CutPrefix(name, "on:"); ok {
		return "on" + capitalize(rest)
	}
	if rest, ok := strings.CutPrefix(name, "@"); ok {
		return "on" + capitalize(rest)
	}
	return name
}

// capitalize upper-cases the first rune of s and leaves the rest untouched.
// Full case mapping applies, so the first rune may become several
// (ß -> SS).
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	// A Caser keeps state and must not be shared between goroutines.
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// JSString returns s as a double-quoted JavaScript string literal. Only the
// quote, backslash, newline, carriage return and tab are escaped; every
// other character, including non-ASCII, is written as is.
func JSString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// templateLiteral returns s as a back-tick literal. Only the back-tick is
// escaped so that ${...} placeholders stay live in the generated code.
func templateLiteral(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "\\`") + "`"
}
