package posts

// FrontMatter is the validated metadata header of a content file. Required
// fields must be present as non-empty text; GitHub is optional. Instances
// are immutable once constructed by ValidateHeader.
type FrontMatter struct {
	Title       string `json:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	Author      string `json:"author" yaml:"author"`
	GitHub      string `json:"github,omitempty" yaml:"github,omitempty"`
}

// PostMeta extends FrontMatter with the two identifiers derived from the
// source filename and title. ID is a digit-only string used for sorting and
// as the unambiguous slug prefix; Slug combines the id with a URL-safe
// rendering of the title. Constructed fresh on every call, never persisted.
type PostMeta struct {
	FrontMatter `yaml:",inline"`

	ID   string `json:"id" yaml:"id"`
	Slug string `json:"slug" yaml:"slug"`
}

// Post carries a post's metadata together with its raw markdown body and
// the rendered HTML. Only the detail path constructs one; callers consume
// it immediately and nothing is cached.
type Post struct {
	PostMeta

	Body     []byte `json:"-"`
	BodyHTML []byte `json:"body_html"`
}
