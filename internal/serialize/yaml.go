package serialize

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/invoicemd/invoicemd/internal/document"
)

func toYAML(inv *document.Invoice) (string, error) {
	b, err := yaml.Marshal(buildDTO(inv))
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(b), nil
}
