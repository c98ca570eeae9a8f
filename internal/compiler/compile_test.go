package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
)

var sampleTemplates = []string{
	"",
	"   ",
	"plain text",
	"<div></div>",
	`<div class="counter"><h1>Hello, ${name}!</h1><button @click={inc}>+</button></div>`,
	"<ul>\n\t<li>one</li>\n\t<li>two</li>\n</ul>",
	"<a/><b/><c/>",
	`<input type="checkbox" checked on:change={toggle}>`,
	"a < b > c",
	"<div><span>unclosed",
	"</stray>",
	`<p title="日本">ünïcödé ${x}</p>`,
}

func TestCompile_Deterministic(t *testing.T) {
	for _, input := range sampleTemplates {
		first := Compile(input)
		second := Compile(input)
		if first != second {
			t.Errorf("Compile(%q) not deterministic:\n%s\n%s", input, first, second)
		}
	}
}

func TestCompile_VoidElementForcing(t *testing.T) {
	open := Compile(`<img src="x">`)
	closed := Compile(`<img src="x" />`)

	if open != closed {
		t.Errorf("void element output differs:\n%s\n%s", open, closed)
	}
	if want := `() => h("img", {"src": "x"})`; open != want {
		t.Errorf("got %s, want %s", open, want)
	}
}

func TestCompile_EventNameEquivalence(t *testing.T) {
	inputs := []string{
		"<button on:click={doIt}></button>",
		"<button @click={doIt}></button>",
		"<button onClick={doIt}></button>",
	}

	want := `() => h("button", {"onClick": doIt})`
	for _, input := range inputs {
		if got := Compile(input); got != want {
			t.Errorf("Compile(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestCompile_EscapingRoundTrip(t *testing.T) {
	original := "q\"b\\\nz"
	out := Compile("<p>" + original + "</p>")

	prefix := `() => h("p", {}, `
	if !strings.HasPrefix(out, prefix) || !strings.HasSuffix(out, ")") {
		t.Fatalf("unexpected shape: %s", out)
	}
	lit := strings.TrimSuffix(strings.TrimPrefix(out, prefix), ")")

	// The escapes JSString uses are a subset of Go's, so strconv can read them back.
	got, err := strconv.Unquote(lit)
	if err != nil {
		t.Fatalf("unquote %s: %v", lit, err)
	}
	if got != original {
		t.Errorf("round trip = %q, want %q", got, original)
	}
}

func TestCompile_NestingDepth(t *testing.T) {
	type tc struct {
		input string
		depth int
	}

	tests := map[string]tc{
		"flat":         {input: `<br class="x">`, depth: 1},
		"text child":   {input: "<p>text (with parens)</p>", depth: 1},
		"two levels":   {input: "<div><p>a</p><p>b</p></div>", depth: 2},
		"three levels": {input: "<a><b><c/></b><d/></a>", depth: 3},
		"fragment":     {input: "<a><b/></a><c/>", depth: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := Compile(tt.input)
			if got := callDepth(strings.TrimPrefix(out, "() => ")); got != tt.depth {
				t.Errorf("call depth of %s = %d, want %d", out, got, tt.depth)
			}
		})
	}
}

func TestCompile_MalformedInputs(t *testing.T) {
	inputs := []string{
		"<",
		"<<<<",
		"</",
		"<>",
		"< / >",
		"<a",
		"<a b",
		"<a b=",
		`<a b="`,
		"<a b='x",
		"<a b={",
		"<a b={x",
		"<a ==== >",
		"<a //// >",
		"<div><p><span>",
		"</a></b></c>",
		"<a></b></c>",
		"text</a>more",
		"\x00<\x00>\xff",
		"<a\n\n\n",
		"<😀>",
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			out := Compile(input)
			if !strings.HasPrefix(out, "() => ") {
				t.Fatalf("missing arrow prefix: %s", out)
			}
			if !balanced(strings.TrimPrefix(out, "() => ")) {
				t.Errorf("unbalanced output: %s", out)
			}
		})
	}
}

func TestCompile_Concurrent(t *testing.T) {
	want := make([]string, len(sampleTemplates))
	for i, input := range sampleTemplates {
		want[i] = Compile(input)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8*len(sampleTemplates))
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, input := range sampleTemplates {
				if got := Compile(input); got != want[i] {
					errs <- fmt.Sprintf("Compile(%q) = %s, want %s", input, got, want[i])
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// skipLiteral returns the index just past the string literal starting at i.
func skipLiteral(code string, i int) int {
	quote := code[i]
	for i++; i < len(code); i++ {
		switch code[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return i
}

// callDepth returns the maximum parenthesis depth outside string literals.
func callDepth(code string) int {
	depth, max := 0, 0
	for i := 0; i < len(code); {
		switch code[i] {
		case '"', '`':
			i = skipLiteral(code, i)
			continue
		case '(':
			depth++
			if depth > max {
				max = depth
			}
		case ')':
			depth--
		}
		i++
	}
	return max
}

// balanced reports whether (), [] and {} pair up outside string literals.
func balanced(code string) bool {
	var stack []byte
	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}
	for i := 0; i < len(code); {
		switch c := code[i]; c {
		case '"', '`':
			end := skipLiteral(code, i)
			if end > len(code) || code[end-1] != c || end-1 == i {
				return false
			}
			i = end
			continue
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[c] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
		i++
	}
	return len(stack) == 0
}
