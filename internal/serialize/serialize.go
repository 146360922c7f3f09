// Package serialize renders a built invoice document into one of the
// supported output formats. Rendering is pure and deterministic: the same
// document yields byte-identical output for a given format version.
package serialize

import (
	"fmt"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/common"
	"github.com/invoicemd/invoicemd/internal/document"
)

// Serialize renders the document in the requested format. Unknown format
// identifiers fail with common.ErrUnsupportedFormat; this is one of the two
// fatal errors in the whole pipeline.
func Serialize(inv *document.Invoice, format constants.OutputFormat) (string, error) {
	switch format {
	case constants.FormatMarkdown:
		return toMarkdown(inv), nil
	case constants.FormatJSON:
		return toJSON(inv)
	case constants.FormatXML:
		return toXML(inv)
	case constants.FormatYAML:
		return toYAML(inv)
	case constants.FormatHTML:
		return toHTML(inv)
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
}
