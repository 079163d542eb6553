package posts

import (
	"fmt"
	"regexp"
	"strings"
)

// titleRuns matches every maximal run of characters outside [a-z0-9] in a
// lowercased title. Each run collapses to a single hyphen.
var titleRuns = regexp.MustCompile(`[^a-z0-9]+`)

// idPattern constrains post ids to digit-only strings. Because an id can
// never contain a hyphen, the id prefix of a slug is always recoverable.
var idPattern = regexp.MustCompile(`^[0-9]+$`)

// FileID derives the stable post identifier from a content filename by
// stripping the known extension and lowercasing the remainder. Applying it
// to an already-stripped id is a no-op.
func FileID(filename, ext string) string {
	return strings.ToLower(strings.TrimSuffix(filename, ext))
}

// Slugify derives the URL slug for a content file: the file id, a hyphen,
// and the normalized title. A title with no slug-safe characters normalizes
// to an empty fragment, leaving a trailing hyphen; that is accepted as-is.
func Slugify(filename, ext, title string) string {
	return FileID(filename, ext) + "-" + TitleFragment(title)
}

// TitleFragment lowercases a title and collapses every run of characters
// outside [a-z0-9] into a single hyphen. A title with no slug-safe
// characters at all collapses to the empty fragment rather than a bare
// hyphen, so Slugify emits exactly one trailing hyphen for it.
func TitleFragment(title string) string {
	fragment := titleRuns.ReplaceAllString(strings.ToLower(title), "-")
	if strings.Trim(fragment, "-") == "" {
		return ""
	}
	return fragment
}

// SlugFilename recovers the source filename from a slug produced by
// Slugify. The leading segment before the first hyphen must satisfy the id
// schema; the title portion is ignored entirely. This is the exact left
// inverse of Slugify and never touches the filesystem.
func SlugFilename(slug, ext string) (string, error) {
	id := slug
	if idx := strings.IndexByte(slug, '-'); idx >= 0 {
		id = slug[:idx]
	}
	if !ValidID(id) {
		return "", fmt.Errorf("%w: %q", ErrSlugInvalid, slug)
	}
	return id + ext, nil
}

// ValidID reports whether the value satisfies the post id schema.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}
