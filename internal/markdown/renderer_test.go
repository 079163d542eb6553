package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func testClasses() ElementClasses {
	return ElementClasses{
		"h1":         "title",
		"h2":         "subtitle",
		"p":          "copy",
		"a":          "link",
		"strong":     "loud",
		"blockquote": "quote",
		"ul":         "items",
		"code":       "mono",
	}
}

func render(tb testing.TB, cfg RendererConfig, source string) string {
	tb.Helper()
	out, err := NewRenderer(cfg).Render([]byte(source))
	if err != nil {
		tb.Fatalf("Render: %v", err)
	}
	return string(out)
}

func TestRenderer_HeadingAnchors(t *testing.T) {
	got := render(t, RendererConfig{Classes: testClasses(), Anchors: true}, "# Hello World")

	if !strings.Contains(got, `<h1 id="hello-world" class="title">`) {
		t.Fatalf("expected identified, classed heading, got %q", got)
	}
	if !strings.Contains(got, `<a href="#hello-world">Hello World</a></h1>`) {
		t.Fatalf("expected anchor wrapping heading text, got %q", got)
	}
}

func TestRenderer_HeadingWithoutAnchors(t *testing.T) {
	got := render(t, RendererConfig{Classes: testClasses()}, "## Section")

	if !strings.Contains(got, `<h2 id="section" class="subtitle">Section</h2>`) {
		t.Fatalf("expected plain heading, got %q", got)
	}
	if strings.Contains(got, "<a ") {
		t.Fatalf("expected no anchor, got %q", got)
	}
}

func TestRenderer_StructuralElementClasses(t *testing.T) {
	source := "Some **bold** text with `code` and a [link](https://example.com).\n\n> quoted\n\n- one\n- two\n"
	got := render(t, RendererConfig{Classes: testClasses()}, source)

	for _, want := range []string{
		`<p class="copy">`,
		`<strong class="loud">bold</strong>`,
		`<code class="mono">code</code>`,
		`<a href="https://example.com" class="link">link</a>`,
		`<blockquote class="quote">`,
		`<ul class="items">`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got %q", want, got)
		}
	}
}

func TestRenderer_UnmappedElementsRenderPlain(t *testing.T) {
	got := render(t, RendererConfig{}, "plain *em* paragraph")

	if !strings.Contains(got, "<p>") {
		t.Fatalf("expected unclassed paragraph, got %q", got)
	}
	if !strings.Contains(got, "<em>em</em>") {
		t.Fatalf("expected em fallback, got %q", got)
	}
	if strings.Contains(got, "class=") {
		t.Fatalf("expected no class attributes, got %q", got)
	}
}

func TestRenderer_OrderedListKeepsDefaultTag(t *testing.T) {
	got := render(t, RendererConfig{Classes: testClasses()}, "1. first\n2. second\n")

	if !strings.Contains(got, "<ol>") {
		t.Fatalf("expected plain ol, got %q", got)
	}
	if strings.Contains(got, `<ol class=`) {
		t.Fatalf("ul class must not leak onto ol, got %q", got)
	}
}

func TestRenderer_HardWraps(t *testing.T) {
	got := render(t, RendererConfig{
		Options: interfaces.RenderOptions{HardWraps: true},
	}, "line one\nline two")

	if !strings.Contains(got, "line one<br") {
		t.Fatalf("expected hard wrap, got %q", got)
	}
}

func TestRenderer_UnsafeHTML(t *testing.T) {
	source := "before\n\n<div>raw</div>\n"

	safe := render(t, RendererConfig{}, source)
	if strings.Contains(safe, "<div>raw</div>") {
		t.Fatalf("expected raw HTML suppressed by default, got %q", safe)
	}

	unsafe := render(t, RendererConfig{
		Options: interfaces.RenderOptions{Unsafe: true},
	}, source)
	if !strings.Contains(unsafe, "<div>raw</div>") {
		t.Fatalf("expected raw HTML passthrough, got %q", unsafe)
	}
}

func TestRenderer_ExtensionSelection(t *testing.T) {
	source := "~~gone~~"

	with := render(t, RendererConfig{
		Options: interfaces.RenderOptions{Extensions: []string{"strikethrough"}},
	}, source)
	if !strings.Contains(with, "<del>gone</del>") {
		t.Fatalf("expected strikethrough, got %q", with)
	}

	without := render(t, RendererConfig{
		Options: interfaces.RenderOptions{Extensions: []string{"table"}},
	}, source)
	if strings.Contains(without, "<del>") {
		t.Fatalf("expected no strikethrough, got %q", without)
	}
}
