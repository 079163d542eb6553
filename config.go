package blog

import (
	"errors"
	"strings"
)

var (
	ErrContentDirRequired      = errors.New("blog config: content directory is required")
	ErrContentExtensionInvalid = errors.New("blog config: content extension must start with a dot")
	ErrLoggingLevelInvalid     = errors.New("blog config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("blog config: logging format is invalid")
)

// Config is the top level configuration for the blog module.
type Config struct {
	Content  ContentConfig  `yaml:"content"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ContentConfig locates the content files on disk.
type ContentConfig struct {
	// Dir is the directory holding the markdown documents.
	Dir string `yaml:"dir"`
	// Extension is the filename suffix content files carry.
	Extension string `yaml:"extension"`
}

// MarkdownConfig tunes the body rendering engine.
type MarkdownConfig struct {
	// HardWraps renders newlines inside paragraphs as <br> elements.
	HardWraps bool `yaml:"hard_wraps"`
	// Unsafe allows raw HTML embedded in markdown bodies to pass through.
	Unsafe bool `yaml:"unsafe"`
	// Extensions selects markdown extensions by name; unknown names are
	// ignored and an empty list enables the default set.
	Extensions []string `yaml:"extensions"`
	// HeadingAnchors injects self-link anchors into rendered headings.
	HeadingAnchors bool `yaml:"heading_anchors"`
	// Elements maps structural element kinds (h1..h4, p, a, strong,
	// blockquote, ul, code) to the CSS class rendered on them.
	Elements map[string]string `yaml:"elements"`
}

// LoggingConfig captures options for the go-logger provider.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
	// Focus restricts output to the named module loggers (e.g.
	// "blog.posts"); empty means no filtering.
	Focus []string `yaml:"focus"`
}

// DefaultConfig returns the configuration used when the host supplies
// nothing: markdown files under ./content, GFM rendering with heading
// anchors, and JSON logging at info level.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content",
			Extension: ".md",
		},
		Markdown: MarkdownConfig{
			Unsafe:         true,
			Extensions:     []string{"gfm", "linkify"},
			HeadingAnchors: true,
			Elements:       DefaultElements(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultElements returns the stock class mapping applied to rendered
// structural elements.
func DefaultElements() map[string]string {
	return map[string]string{
		"h1":         "post-heading post-heading-1",
		"h2":         "post-heading post-heading-2",
		"h3":         "post-heading post-heading-3",
		"h4":         "post-heading post-heading-4",
		"p":          "post-paragraph",
		"a":          "post-link",
		"strong":     "post-strong",
		"blockquote": "post-quote",
		"ul":         "post-list",
		"code":       "post-code",
	}
}

// Validate checks the configuration before the module is assembled.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if ext := strings.TrimSpace(c.Content.Extension); ext != "" && !strings.HasPrefix(ext, ".") {
		return ErrContentExtensionInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}
