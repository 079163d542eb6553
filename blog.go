// Package blog assembles a filesystem-backed blog content pipeline: it
// reads markdown documents with frontmatter headers, validates the
// metadata, derives stable ids and URL slugs, and renders bodies to HTML.
package blog

import (
	"io/fs"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
)

// PostService exports the post service contract for consumers of the blog package.
type PostService = *posts.Service

// FrontMatter exports the validated header type.
type FrontMatter = posts.FrontMatter

// PostMeta exports the listing metadata type.
type PostMeta = posts.PostMeta

// Post exports the rendered document type.
type Post = posts.Post

// Module represents the top level blog runtime façade.
type Module struct {
	cfg   Config
	posts *posts.Service
}

// Option overrides a collaborator during module construction.
type Option func(*moduleOptions)

type moduleOptions struct {
	filesystem fs.FS
	provider   interfaces.LoggerProvider
}

// WithFilesystem substitutes the content filesystem, primarily for tests
// and embedded content.
func WithFilesystem(filesystem fs.FS) Option {
	return func(o *moduleOptions) {
		o.filesystem = filesystem
	}
}

// WithLoggerProvider installs a logger provider; without one the module
// stays silent.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// New constructs a blog module from the provided configuration. The element
// class mapping and renderer are built once here and reused by every Get
// call; nothing is looked up ambiently afterwards.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := moduleOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	var loader *markdown.Loader
	if options.filesystem != nil {
		loader = markdown.NewLoader(options.filesystem)
	} else {
		loader = markdown.NewDirLoader(cfg.Content.Dir)
	}

	renderer := markdown.NewRenderer(markdown.RendererConfig{
		Options: interfaces.RenderOptions{
			HardWraps:  cfg.Markdown.HardWraps,
			Unsafe:     cfg.Markdown.Unsafe,
			Extensions: cfg.Markdown.Extensions,
		},
		Classes: markdown.ElementClasses(cfg.Markdown.Elements),
		Anchors: cfg.Markdown.HeadingAnchors,
	})

	service, err := posts.NewService(posts.Config{
		Extension: cfg.Content.Extension,
	}, loader, markdown.Parser{}, renderer, options.provider)
	if err != nil {
		return nil, err
	}

	logging.ModuleLogger(options.provider, logging.RootModule).
		Debug("blog module ready", "content_dir", cfg.Content.Dir)

	return &Module{cfg: cfg, posts: service}, nil
}

// Posts returns the configured post service.
func (m *Module) Posts() *posts.Service {
	return m.posts
}
