package selene

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func TestH(t *testing.T) {
	type tc struct {
		node *VNode
		want *VNode
	}

	tests := map[string]tc{
		"empty element": {
			node: H("div", nil),
			want: &VNode{Kind: ElementNode, Tag: "div"},
		},
		"props are kept": {
			node: H("a", Props{"href": "/x", "hidden": true}),
			want: &VNode{Kind: ElementNode, Tag: "a", Props: Props{"href": "/x", "hidden": true}},
		},
		"strings and numbers become text": {
			node: H("p", nil, "n = ", 3, 1.5),
			want: &VNode{Kind: ElementNode, Tag: "p", Children: []*VNode{
				{Kind: TextNode, Text: "n = "},
				{Kind: TextNode, Text: "3"},
				{Kind: TextNode, Text: "1.5"},
			}},
		},
		"stringer becomes text": {
			node: H("p", nil, stringer{"hi"}),
			want: &VNode{Kind: ElementNode, Tag: "p", Children: []*VNode{
				{Kind: TextNode, Text: "hi"},
			}},
		},
		"nil and booleans are skipped": {
			node: H("p", nil, nil, true, false, (*VNode)(nil), "x"),
			want: &VNode{Kind: ElementNode, Tag: "p", Children: []*VNode{
				{Kind: TextNode, Text: "x"},
			}},
		},
		"nested slices are flattened": {
			node: H("ul", nil, []any{H("li", nil), []*VNode{H("li", nil), nil}}, []any{[]any{"end"}}),
			want: &VNode{Kind: ElementNode, Tag: "ul", Children: []*VNode{
				{Kind: ElementNode, Tag: "li"},
				{Kind: ElementNode, Tag: "li"},
				{Kind: TextNode, Text: "end"},
			}},
		},
		"fragment": {
			node: H(Fragment, nil, H("a", nil), H("b", nil)),
			want: &VNode{Kind: FragmentNode, Children: []*VNode{
				{Kind: ElementNode, Tag: "a"},
				{Kind: ElementNode, Tag: "b"},
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.node, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("H() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVNode_String(t *testing.T) {
	type tc struct {
		node *VNode
		want string
	}

	tests := map[string]tc{
		"text": {
			node: Text(`say "hi"`),
			want: `"say \"hi\""`,
		},
		"element with sorted props": {
			node: H("a", Props{"title": "t", "href": "/", "onClick": func() {}}, "go"),
			want: `<a href="/" onClick=func title="t">"go"</a>`,
		},
		"fragment": {
			node: H(Fragment, nil, H("br", nil), "x"),
			want: `<><br></br>"x"</>`,
		},
		"nil": {
			node: nil,
			want: "<nil>",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNodeKind_String(t *testing.T) {
	if got := FragmentNode.String(); got != "fragment" {
		t.Errorf("FragmentNode.String() = %q", got)
	}
	if got := NodeKind(9).String(); got != "NodeKind(9)" {
		t.Errorf("NodeKind(9).String() = %q", got)
	}
}

func TestHC(t *testing.T) {
	card := func(p Props) *VNode {
		return H("section", Props{"class": p["class"]}, p[ChildrenProp])
	}

	v := HC(card, Props{"class": "card"}, H("p", nil, "body"), "tail")
	if v.Kind != ComponentNode || v.Component == nil {
		t.Fatalf("HC() = %+v, want a component node", v)
	}
	if got, want := v.String(), `<component class="card"><p>"body"</p>"tail"</component>`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}

	want := &VNode{Kind: ElementNode, Tag: "section", Props: Props{"class": "card"}, Children: []*VNode{
		{Kind: ElementNode, Tag: "p", Children: []*VNode{{Kind: TextNode, Text: "body"}}},
		{Kind: TextNode, Text: "tail"},
	}}
	if diff := cmp.Diff(want, expand(v), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("expand() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := v.Props[ChildrenProp]; ok {
		t.Error("expand() wrote children into the descriptor's own props")
	}
}

func TestExpand(t *testing.T) {
	leaf := func(Props) *VNode { return H("b", nil) }

	type tc struct {
		node    *VNode
		wantTag string
		wantNil bool
	}

	tests := map[string]tc{
		"element is returned as is": {
			node:    H("a", nil),
			wantTag: "a",
		},
		"component returning a component": {
			node:    HC(func(Props) *VNode { return HC(leaf, nil) }, nil),
			wantTag: "b",
		},
		"component as a bare child": {
			node:    H("div", nil, Component(leaf)).Children[0],
			wantTag: "b",
		},
		"nil component": {
			node:    HC(nil, nil),
			wantNil: true,
		},
		"component rendering nil": {
			node:    HC(func(Props) *VNode { return nil }, nil),
			wantNil: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := expand(tt.node)
			if tt.wantNil {
				if got != nil {
					t.Errorf("expand() = %s, want nil", got)
				}
				return
			}
			if got == nil || got.Kind != ElementNode || got.Tag != tt.wantTag {
				t.Errorf("expand() = %s, want <%s>", got, tt.wantTag)
			}
		})
	}
}
