package serialize

import (
	"encoding/xml"
	"fmt"

	"github.com/invoicemd/invoicemd/internal/document"
)

func toXML(inv *document.Invoice) (string, error) {
	b, err := xml.MarshalIndent(buildDTO(inv), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return xml.Header + string(b) + "\n", nil
}
