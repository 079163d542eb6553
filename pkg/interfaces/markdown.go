package interfaces

// RawHeader is the untyped key/value mapping extracted from a document's
// frontmatter block. It only exists while one document is being processed;
// validation turns it into a typed structure or rejects the document.
type RawHeader map[string]any

// HeaderParser extracts the frontmatter header and the markdown body from a
// document's raw bytes. The returned body has the header delimiters removed.
type HeaderParser interface {
	ParseHeader(source []byte) (RawHeader, []byte, error)
}

// BodyRenderer converts a markdown body into display-ready HTML. Renderers
// are stateless so a single instance can be shared across requests.
type BodyRenderer interface {
	Render(body []byte) ([]byte, error)
}

// RenderOptions tune how the markdown engine converts document bodies.
type RenderOptions struct {
	// HardWraps renders newlines inside paragraphs as <br> elements.
	HardWraps bool
	// Unsafe allows raw HTML embedded in the markdown body to pass through.
	Unsafe bool
	// Extensions selects markdown extensions by name (e.g. "gfm", "linkify").
	// Unknown names are ignored; an empty list enables a default set.
	Extensions []string
}
