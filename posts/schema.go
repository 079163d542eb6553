package posts

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ValidateHeader checks an untyped header mapping against the required
// header shape and returns the typed FrontMatter. A nil or empty mapping
// means the document carried no parseable header at all and fails with
// ErrPostNotFound; individual field failures report the offending field.
func ValidateHeader(raw interfaces.RawHeader) (FrontMatter, error) {
	if len(raw) == 0 {
		return FrontMatter{}, ErrPostNotFound
	}

	fm := FrontMatter{
		Title:       stringField(raw, "title"),
		Date:        stringField(raw, "date"),
		Description: stringField(raw, "description"),
		Author:      stringField(raw, "author"),
		GitHub:      stringField(raw, "github"),
	}

	if err := fm.Validate(); err != nil {
		return FrontMatter{}, err
	}
	return fm, nil
}

// Validate enforces presence and text type of the four required header
// fields. GitHub is optional.
func (fm FrontMatter) Validate() error {
	return validation.ValidateStruct(&fm,
		validation.Field(&fm.Title, validation.Required.Error("Title is required")),
		validation.Field(&fm.Date, validation.Required.Error("Date is required")),
		validation.Field(&fm.Description, validation.Required.Error("Description is required")),
		validation.Field(&fm.Author, validation.Required.Error("Author is required")),
	)
}

// Validate enforces the extended shape used once id and slug have been
// derived. The base header rules apply unchanged; on top of them the id
// must satisfy the digit-only id schema so that numeric ordering and slug
// inversion stay well defined. A failure here after a successful header
// validation indicates a derivation bug, not bad user input.
func (m PostMeta) Validate() error {
	if err := m.FrontMatter.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID,
			validation.Required.Error("ID is required"),
			validation.Match(idPattern).Error("ID must be a numeric string"),
		),
		validation.Field(&m.Slug, validation.Required.Error("Slug is required")),
	)
}

// stringField extracts a text value from the raw header. Values that are
// present but not text are treated as absent so the field-specific
// required-error names the offending key.
func stringField(raw interfaces.RawHeader, key string) string {
	value, ok := raw[key]
	if !ok {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return ""
	}
	return text
}
