package compiler

import (
	"strings"
	"testing"
)

func TestGenerateGoFile(t *testing.T) {
	code := Compile(`<div class="counter">${count}</div>`)

	out, err := GenerateGoFile("views", "components/counter.selene", code)
	if err != nil {
		t.Fatalf("GenerateGoFile: %v", err)
	}

	got := string(out)
	wantContains := []string{
		"// Code generated by selene generate. DO NOT EDIT.",
		"// Source: components/counter.selene",
		"package views",
		"// CounterTemplate is the compiled render function for counter.selene.",
		"const CounterTemplate = \"() => h(\\\"div\\\", {\\\"class\\\": \\\"counter\\\"}, `${count}`)\"",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("output missing expected string: %q\nGot:\n%s", want, got)
		}
	}
	// Nothing registers, so the runtime import is pruned.
	if strings.Contains(got, "import") {
		t.Errorf("unused runtime import kept:\n%s", got)
	}
}

func TestGoFileGenerator_Register(t *testing.T) {
	type tc struct {
		register     bool
		runtime      string
		wantContains []string
		wantMissing  []string
	}

	tests := map[string]tc{
		"register keeps the runtime import": {
			register: true,
			wantContains: []string{
				`import "github.com/grindlemire/selene"`,
				"func init() {\n\tselene.Register(\"my-app\", MyAppTemplate)\n\tselene.Register(\"footer\", FooterTemplate)\n}",
			},
		},
		"custom runtime import path": {
			register:     true,
			runtime:      "example.com/vendor/selene",
			wantContains: []string{`import "example.com/vendor/selene"`, "selene.Register("},
		},
		"no register drops the import": {
			register:    false,
			wantMissing: []string{"import", "func init", "selene.Register"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGoFileGenerator()
			g.Register = tt.register
			if tt.runtime != "" {
				g.RuntimeImport = tt.runtime
			}
			out, err := g.Generate("views", []Template{
				{SourceFile: "views/my-app.selene", Code: `() => h("main", {})`},
				{SourceFile: "views/footer.selene", Code: `() => h("footer", {})`},
			})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(string(out), want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.wantMissing {
				if strings.Contains(string(out), unwanted) {
					t.Errorf("output contains %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestGoFileGenerator_MultipleTemplates(t *testing.T) {
	type tc struct {
		pkg          string
		templates    []Template
		wantErr      string
		wantContains []string
	}

	tests := map[string]tc{
		"two templates in order": {
			pkg: "ui",
			templates: []Template{
				{SourceFile: "header.selene", Code: `() => h("header", {})`},
				{SourceFile: "footer.selene", Code: `() => h("footer", {})`},
			},
			wantContains: []string{
				"package ui",
				`const HeaderTemplate = "() => h(\"header\", {})"`,
				`const FooterTemplate = "() => h(\"footer\", {})"`,
			},
		},
		"invalid package name": {
			pkg:       "my-views",
			templates: []Template{{SourceFile: "a.selene", Code: `() => ("")`}},
			wantErr:   `invalid package name "my-views"`,
		},
		"colliding identifiers": {
			pkg: "ui",
			templates: []Template{
				{SourceFile: "my-app.selene", Code: `() => ("")`},
				{SourceFile: "my_app.selene", Code: `() => ("")`},
			},
			wantErr: "my-app.selene and my_app.selene both generate MyAppTemplate",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGoFileGenerator()
			g.SkipImports = true
			out, err := g.Generate(tt.pkg, tt.templates)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(string(out), want) {
					t.Errorf("output missing expected string: %q\nGot:\n%s", want, out)
				}
			}
			if strings.Contains(string(out), "import") {
				t.Errorf("unused runtime import left in output:\n%s", out)
			}
			if strings.Index(string(out), "HeaderTemplate") > strings.Index(string(out), "FooterTemplate") {
				t.Errorf("templates out of order:\n%s", out)
			}
		})
	}
}

func TestGenerateJSModule(t *testing.T) {
	code := `() => h(Fragment, {}, [h("a", {}), h("b", {})])`

	type tc struct {
		runtime string
		opts    []Option
		want    string
	}

	tests := map[string]tc{
		"with runtime import": {
			runtime: "@selene/core",
			want: "// Code generated by selene generate. DO NOT EDIT.\n" +
				"// Source: page.selene\n\n" +
				"import { h, Fragment } from \"@selene/core\";\n\n" +
				"export default " + code + ";\n",
		},
		"custom binding names": {
			runtime: "preact",
			opts:    []Option{WithFactory("createElement"), WithFragment("Fragment")},
			want: "// Code generated by selene generate. DO NOT EDIT.\n" +
				"// Source: page.selene\n\n" +
				"import { createElement, Fragment } from \"preact\";\n\n" +
				"export default " + code + ";\n",
		},
		"no runtime import": {
			want: "// Code generated by selene generate. DO NOT EDIT.\n" +
				"// Source: page.selene\n\n" +
				"export default " + code + ";\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := string(GenerateJSModule("views/page.selene", code, tt.runtime, tt.opts...))
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestOutputNames(t *testing.T) {
	type tc struct {
		input  string
		ident  string
		goFile string
		jsFile string
	}

	tests := map[string]tc{
		"simple": {
			input:  "counter.selene",
			ident:  "CounterTemplate",
			goFile: "counter_selene.go",
			jsFile: "counter.selene.js",
		},
		"hyphenated in a directory": {
			input:  "views/my-app.selene",
			ident:  "MyAppTemplate",
			goFile: "views/my_app_selene.go",
			jsFile: "views/my-app.selene.js",
		},
		"leading digit": {
			input:  "404.selene",
			ident:  "T404Template",
			goFile: "404_selene.go",
			jsFile: "404.selene.js",
		},
		"caseless first letter": {
			input:  "日本.selene",
			ident:  "T日本Template",
			goFile: "日本_selene.go",
			jsFile: "日本.selene.js",
		},
		"sharp s first letter": {
			input:  "views/ßig-page.selene",
			ident:  "SSigPageTemplate",
			goFile: "views/ßig_page_selene.go",
			jsFile: "views/ßig-page.selene.js",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := TemplateIdent(tt.input); got != tt.ident {
				t.Errorf("TemplateIdent = %q, want %q", got, tt.ident)
			}
			if got := GoOutputName(tt.input); got != tt.goFile {
				t.Errorf("GoOutputName = %q, want %q", got, tt.goFile)
			}
			if got := JSOutputName(tt.input); got != tt.jsFile {
				t.Errorf("JSOutputName = %q, want %q", got, tt.jsFile)
			}
		})
	}
}

func TestPackageName(t *testing.T) {
	tests := map[string]string{
		"./views":        "views",
		"ui/Components/": "components",
		"my-views":       "myviews",
		".":              "templates",
		"123":            "templates",
	}

	for dir, want := range tests {
		t.Run(dir, func(t *testing.T) {
			if got := PackageName(dir); got != want {
				t.Errorf("PackageName(%q) = %q, want %q", dir, got, want)
			}
		})
	}
}
