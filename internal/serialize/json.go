package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/invoicemd/invoicemd/internal/document"
)

// documentSchema is the published contract for JSON output. Serialization
// asserts its own output against the schema so a drifting DTO fails loudly
// instead of shipping a silently incompatible document.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["language", "line_items", "fields", "warnings"],
  "additionalProperties": false,
  "properties": {
    "language": {"type": "string", "enum": ["no", "en"]},
    "company": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "org_number": {"type": "string"},
        "phone": {"type": "string"},
        "email": {"type": "string"},
        "website": {"type": "string"},
        "address": {"type": "string"}
      }
    },
    "customer": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "number": {"type": "string"},
        "name": {"type": "string"}
      }
    },
    "invoice": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "number": {"type": "string"},
        "date": {"type": "string"},
        "due_date": {"type": "string"}
      }
    },
    "project": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "contact_person": {"type": "string"},
        "delivery_date": {"type": "string"},
        "delivery_address": {"type": "string"}
      }
    },
    "line_items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["description", "amount_excl_vat", "vat_rate", "vat_amount", "amount_incl_vat"],
        "additionalProperties": false,
        "properties": {
          "description": {"type": "string"},
          "amount_excl_vat": {"type": "string", "pattern": "^-?[0-9]+\\.[0-9]{2}$"},
          "vat_rate": {"type": "string", "pattern": "^-?[0-9]+\\.[0-9]{2}$"},
          "vat_amount": {"type": "string", "pattern": "^-?[0-9]+\\.[0-9]{2}$"},
          "amount_incl_vat": {"type": "string", "pattern": "^-?[0-9]+\\.[0-9]{2}$"}
        }
      }
    },
    "totals": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "extracted_total": {"type": "string", "pattern": "^-?[0-9]+\\.[0-9]{2}$"},
        "computed_total": {"type": "string", "pattern": "^-?[0-9]+\\.[0-9]{2}$"},
        "vat_amount": {"type": "string", "pattern": "^-?[0-9]+\\.[0-9]{2}$"}
      }
    },
    "payment": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "bank_account": {"type": "string"},
        "kid": {"type": "string"},
        "due_date": {"type": "string"}
      }
    },
    "fields": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "value"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string"},
          "value": {"type": "string"},
          "valid": {"type": "boolean"},
          "corrected": {"type": "boolean"},
          "rule": {"type": "string"}
        }
      }
    },
    "warnings": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["code", "message"],
        "additionalProperties": false,
        "properties": {
          "code": {"type": "string"},
          "field": {"type": "string"},
          "message": {"type": "string"}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("invoice.schema.json", documentSchema)

func toJSON(inv *document.Invoice) (string, error) {
	b, err := json.MarshalIndent(buildDTO(inv), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return "", fmt.Errorf("reparse document: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return "", fmt.Errorf("document does not match schema: %w", err)
	}
	return string(b) + "\n", nil
}
