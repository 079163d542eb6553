package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ParseHeader extracts the metadata header and the markdown body from the
// provided source bytes. It returns the untyped header mapping, the body
// without delimiters, and any error encountered. A document without a
// header block yields an empty mapping; deciding whether that is acceptable
// belongs to the validation layer.
func ParseHeader(source []byte) (interfaces.RawHeader, []byte, error) {
	header := interfaces.RawHeader{}

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &header)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return header, body, nil
}

// Parser adapts ParseHeader to the interfaces.HeaderParser contract.
type Parser struct{}

var _ interfaces.HeaderParser = Parser{}

// ParseHeader satisfies interfaces.HeaderParser.
func (Parser) ParseHeader(source []byte) (interfaces.RawHeader, []byte, error) {
	return ParseHeader(source)
}
