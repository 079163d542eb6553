package posts

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrNotFound reports a missing content directory or file.
	ErrNotFound = errors.New("posts: content not found")
	// ErrReadFailed reports an I/O failure other than absence.
	ErrReadFailed = errors.New("posts: read failed")
	// ErrPostNotFound reports a document whose header block is absent or
	// failed to parse as any structure at all.
	ErrPostNotFound = errors.New("posts: post not found")
	// ErrSlugInvalid reports a slug whose leading segment is not a valid
	// post id.
	ErrSlugInvalid = errors.New("posts: slug does not contain a valid post id")
)

const (
	schemaInvalidCode = "POST_SCHEMA_INVALID"
	slugInvalidCode   = "POST_SLUG_INVALID"
)

func wrapSchemaError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "post header validation failed").
		WithTextCode(schemaInvalidCode)
}

func wrapSlugError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "post slug validation failed").
		WithTextCode(slugInvalidCode)
}
