package constants

import "strings"

// OutputFormat identifies a serializer output format.
type OutputFormat string

// Stable values (accepted verbatim on the API and CLI).
const (
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
	FormatXML      OutputFormat = "xml"
	FormatYAML     OutputFormat = "yaml"
	FormatHTML     OutputFormat = "html"
)

// OutputFormats lists the supported formats in a stable order.
var OutputFormats = []OutputFormat{FormatMarkdown, FormatJSON, FormatXML, FormatYAML, FormatHTML}

// ParseFormat normalizes a user-supplied format identifier.
// The boolean reports whether the identifier is known.
func ParseFormat(s string) (OutputFormat, bool) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range OutputFormats {
		if f == known {
			return f, true
		}
	}
	return "", false
}
