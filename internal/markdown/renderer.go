package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ElementClasses maps a structural element kind (h1..h4, p, a, strong,
// blockquote, ul, code) to the CSS class emitted on that element. Kinds
// without an entry render unstyled. The mapping is supplied once at
// construction and reused for every render.
type ElementClasses map[string]string

// RendererConfig controls how the goldmark engine renders document bodies.
type RendererConfig struct {
	Options interfaces.RenderOptions
	Classes ElementClasses
	// Anchors injects a self-link around heading content pointing at the
	// heading's generated id.
	Anchors bool
}

// Renderer converts markdown bodies into HTML. The engine is built once and
// is safe for concurrent use, so callers can share a single instance.
type Renderer struct {
	engine goldmark.Markdown
}

var _ interfaces.BodyRenderer = (*Renderer)(nil)

// NewRenderer constructs a body renderer from the supplied configuration.
func NewRenderer(cfg RendererConfig) *Renderer {
	return &Renderer{engine: newEngine(cfg)}
}

// Render satisfies interfaces.BodyRenderer.
func (r *Renderer) Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

func newEngine(cfg RendererConfig) goldmark.Markdown {
	exts := collectExtensions(cfg.Options.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{
		renderer.WithNodeRenderers(
			util.Prioritized(newElementRenderer(cfg), 100),
		),
	}

	if cfg.Options.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if cfg.Options.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(rendererOptions...),
	}

	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

// elementRenderer overrides the default HTML rendering of the structural
// elements the blog styles, attaching configured classes and heading
// anchors. Everything else falls through to goldmark's defaults.
type elementRenderer struct {
	html.Config
	classes ElementClasses
	anchors bool
}

func newElementRenderer(cfg RendererConfig) renderer.NodeRenderer {
	return &elementRenderer{
		Config:  html.NewConfig(),
		classes: cfg.Classes,
		anchors: cfg.Anchors,
	}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *elementRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindList, r.renderList)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
}

func (r *elementRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	id, hasID := headingID(n)

	if entering {
		_, _ = w.WriteString("<h")
		_, _ = w.WriteString(strconv.Itoa(n.Level))
		if hasID {
			_, _ = w.WriteString(` id="`)
			_, _ = w.Write(util.EscapeHTML(id))
			_ = w.WriteByte('"')
		}
		r.writeClass(w, "h"+strconv.Itoa(n.Level))
		_ = w.WriteByte('>')
		if r.anchors && hasID {
			_, _ = w.WriteString(`<a href="#`)
			_, _ = w.Write(util.EscapeHTML(id))
			_, _ = w.WriteString(`">`)
		}
		return ast.WalkContinue, nil
	}

	if r.anchors && hasID {
		_, _ = w.WriteString("</a>")
	}
	_, _ = w.WriteString("</h")
	_, _ = w.WriteString(strconv.Itoa(n.Level))
	_, _ = w.WriteString(">\n")
	return ast.WalkContinue, nil
}

func (r *elementRenderer) renderParagraph(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<p")
		r.writeClass(w, "p")
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

func (r *elementRenderer) renderLink(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if entering {
		_, _ = w.WriteString(`<a href="`)
		if r.Unsafe || !html.IsDangerousURL(n.Destination) {
			_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
		}
		_ = w.WriteByte('"')
		if n.Title != nil {
			_, _ = w.WriteString(` title="`)
			r.Writer.Write(w, n.Title)
			_ = w.WriteByte('"')
		}
		r.writeClass(w, "a")
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</a>")
	}
	return ast.WalkContinue, nil
}

func (r *elementRenderer) renderEmphasis(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)
	tag := "em"
	if n.Level == 2 {
		tag = "strong"
	}
	if entering {
		_ = w.WriteByte('<')
		_, _ = w.WriteString(tag)
		if tag == "strong" {
			r.writeClass(w, "strong")
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</")
		_, _ = w.WriteString(tag)
		_ = w.WriteByte('>')
	}
	return ast.WalkContinue, nil
}

func (r *elementRenderer) renderBlockquote(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<blockquote")
		r.writeClass(w, "blockquote")
		_, _ = w.WriteString(">\n")
	} else {
		_, _ = w.WriteString("</blockquote>\n")
	}
	return ast.WalkContinue, nil
}

func (r *elementRenderer) renderList(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	tag := "ul"
	if n.IsOrdered() {
		tag = "ol"
	}
	if entering {
		_ = w.WriteByte('<')
		_, _ = w.WriteString(tag)
		if n.IsOrdered() && n.Start != 1 {
			_, _ = w.WriteString(` start="`)
			_, _ = w.WriteString(strconv.Itoa(n.Start))
			_ = w.WriteByte('"')
		}
		if tag == "ul" {
			r.writeClass(w, "ul")
		}
		_, _ = w.WriteString(">\n")
	} else {
		_, _ = w.WriteString("</")
		_, _ = w.WriteString(tag)
		_, _ = w.WriteString(">\n")
	}
	return ast.WalkContinue, nil
}

func (r *elementRenderer) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<code")
		r.writeClass(w, "code")
		_ = w.WriteByte('>')
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			segment := c.(*ast.Text).Segment
			value := segment.Value(source)
			if bytes.HasSuffix(value, []byte("\n")) {
				r.Writer.RawWrite(w, value[:len(value)-1])
				r.Writer.RawWrite(w, []byte(" "))
			} else {
				r.Writer.RawWrite(w, value)
			}
		}
		return ast.WalkSkipChildren, nil
	}
	_, _ = w.WriteString("</code>")
	return ast.WalkContinue, nil
}

func (r *elementRenderer) writeClass(w util.BufWriter, element string) {
	class, ok := r.classes[element]
	if !ok || class == "" {
		return
	}
	_, _ = w.WriteString(` class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(class)))
	_ = w.WriteByte('"')
}

func headingID(n *ast.Heading) ([]byte, bool) {
	attr, ok := n.AttributeString("id")
	if !ok {
		return nil, false
	}
	id, ok := attr.([]byte)
	return id, ok && len(id) > 0
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
