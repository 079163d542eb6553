package posts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Loader lists and reads raw content files. Absent directories and files
// surface as fs.ErrNotExist; any other failure is an I/O error.
type Loader interface {
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, filename string) ([]byte, error)
}

// Config controls how the post service maps filenames to identifiers.
type Config struct {
	// Extension is the suffix content files carry (default ".md").
	Extension string
}

// Service implements the post listing and detail pipeline over a directory
// of markdown documents: read, parse header, validate, derive id and slug,
// and (for the detail path) render the body.
type Service struct {
	ext      string
	loader   Loader
	parser   interfaces.HeaderParser
	renderer interfaces.BodyRenderer
	logger   interfaces.Logger
}

// NewService constructs a post service. The renderer may be nil when only
// listings are needed; Get then fails until one is supplied.
func NewService(cfg Config, loader Loader, parser interfaces.HeaderParser, renderer interfaces.BodyRenderer, provider interfaces.LoggerProvider) (*Service, error) {
	if loader == nil {
		return nil, errors.New("posts: loader is required")
	}
	if parser == nil {
		return nil, errors.New("posts: header parser is required")
	}

	ext := strings.TrimSpace(cfg.Extension)
	if ext == "" {
		ext = ".md"
	}

	return &Service{
		ext:      ext,
		loader:   loader,
		parser:   parser,
		renderer: renderer,
		logger:   logging.ModuleLogger(provider, logging.PostsModule),
	}, nil
}

// List enumerates every document in the content directory, processes each
// file independently, and returns the metadata sorted by numeric id
// descending. Any single failure fails the whole listing; there is no
// partial-success mode.
func (s *Service) List(ctx context.Context) ([]PostMeta, error) {
	names, err := s.loader.List(ctx)
	if err != nil {
		return nil, mapReadError(err)
	}

	metas := make([]PostMeta, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			meta, err := s.loadMeta(gctx, name)
			if err != nil {
				return err
			}
			metas[i] = meta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(metas, func(i, j int) bool {
		if c := compareIDs(metas[i].ID, metas[j].ID); c != 0 {
			return c > 0
		}
		return metas[i].Slug > metas[j].Slug
	})

	s.logger.Debug("listed posts", "count", len(metas))
	return metas, nil
}

// Get resolves a slug back to its source file, loads it, renders the body,
// and returns the post. Only the slug's leading id segment participates in
// the lookup; the title portion is ignored.
func (s *Service) Get(ctx context.Context, slug string) (*Post, error) {
	if s.renderer == nil {
		return nil, errors.New("posts: body renderer is required")
	}

	filename, err := SlugFilename(slug, s.ext)
	if err != nil {
		return nil, wrapSlugError(err)
	}

	source, err := s.loader.Read(ctx, filename)
	if err != nil {
		return nil, mapReadError(err)
	}

	meta, body, err := s.buildMeta(filename, source)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(body)
	if err != nil {
		return nil, fmt.Errorf("posts: render %s: %w", filename, err)
	}

	s.logger.Debug("fetched post", "slug", meta.Slug, "file", filename)
	return &Post{PostMeta: meta, Body: body, BodyHTML: html}, nil
}

// loadMeta runs the listing pipeline for one file: read, parse the header,
// validate, derive identifiers, and re-validate the extended shape.
func (s *Service) loadMeta(ctx context.Context, filename string) (PostMeta, error) {
	source, err := s.loader.Read(ctx, filename)
	if err != nil {
		return PostMeta{}, mapReadError(err)
	}

	meta, _, err := s.buildMeta(filename, source)
	return meta, err
}

func (s *Service) buildMeta(filename string, source []byte) (PostMeta, []byte, error) {
	raw, body, err := s.parser.ParseHeader(source)
	if err != nil {
		return PostMeta{}, nil, wrapSchemaError(fmt.Errorf("%s: %w: %v", filename, ErrPostNotFound, err))
	}

	fm, err := ValidateHeader(raw)
	if err != nil {
		return PostMeta{}, nil, wrapSchemaError(fmt.Errorf("%s: %w", filename, err))
	}

	meta := PostMeta{
		FrontMatter: fm,
		ID:          FileID(filename, s.ext),
		Slug:        Slugify(filename, s.ext, fm.Title),
	}

	// The extended check exists to catch derivation bugs, not user input.
	if err := meta.Validate(); err != nil {
		return PostMeta{}, nil, wrapSchemaError(fmt.Errorf("%s: %w", filename, err))
	}

	return meta, body, nil
}

// compareIDs orders digit-only ids by numeric value without parsing, so ids
// of arbitrary length sort correctly. Leading zeros do not affect the
// ordering.
func compareIDs(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func mapReadError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrReadFailed, err)
}
