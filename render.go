package woql

import (
	"bytes"
	"io"

	"github.com/rlch/woql/internal"
	"github.com/rlch/woql/query"
)

// Format selects the output of [Render].
type Format = internal.Format

const (
	// FormatJSON renders the JSON-LD style document, with "@type" on every
	// node.
	FormatJSON = internal.FormatJSON
	// FormatYAML renders the same document as YAML.
	FormatYAML = internal.FormatYAML
	// FormatGo renders a Go expression that rebuilds the query.
	FormatGo = internal.FormatGo
)

var ErrUnknownFormat = internal.ErrUnknownFormat

// Render writes q to w in format.
func Render(w io.Writer, q query.Query, format Format) error {
	return internal.Render(w, q, format)
}

// RenderString is [Render] into a string.
func RenderString(q query.Query, format Format) (string, error) {
	var buf bytes.Buffer
	if err := internal.Render(&buf, q, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}
