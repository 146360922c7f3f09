package fields

import (
	"regexp"
	"strings"

	"github.com/invoicemd/invoicemd/constants"
)

// labelRule builds a Rule from an anchored pattern with one capture group.
func labelRule(id, field string, priority int, pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		ID:       id,
		Field:    field,
		Priority: priority,
		Extract: func(text string) string {
			m := re.FindStringSubmatch(text)
			if m == nil {
				return ""
			}
			return m[1]
		},
	}
}

// firstLineRule takes the first line of the document as the issuing company
// name. Invoices lead with the letterhead; this is structural, not
// positional-by-coordinate, so it survives OCR reflow within the header.
func firstLineRule(id, field string, priority int) Rule {
	reLabelish := regexp.MustCompile(`(?i)^(faktura|invoice|kvittering|receipt)\b`)
	return Rule{
		ID:       id,
		Field:    field,
		Priority: priority,
		Extract: func(text string) string {
			for _, line := range strings.Split(text, "\n") {
				line = strings.TrimSpace(line)
				if line == "" || reLabelish.MatchString(line) {
					continue
				}
				if strings.ContainsAny(line, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZæøåÆØÅ") {
					return line
				}
				return ""
			}
			return ""
		},
	}
}

var norwegianRules = []Rule{
	firstLineRule("no.company.letterhead", constants.FieldCompanyName, 0),

	labelRule("no.orgnr.registry", constants.FieldOrgNumber, 1,
		`(?im)(?:foretaksregisteret|org\.?\s*nr\.?|organisasjonsnummer)\s*:?\s*((?:NO\s*)?[0-9][0-9 .]{7,13}[0-9](?:\s*MVA)?)`),
	labelRule("no.orgnr.mva", constants.FieldOrgNumber, 0,
		`(?im)\b(NO\s*[0-9]{3}\s*[0-9]{3}\s*[0-9]{3}\s*MVA)\b`),

	labelRule("no.phone.label", constants.FieldPhone, 0,
		`(?im)^\s*(?:telefon|tlf\.?|mobil)\s*:?\s*(\+?[0-9][0-9 ()-]{6,17})`),
	labelRule("no.email.label", constants.FieldEmail, 1,
		`(?im)^\s*e-?post(?:adresse)?\s*:?\s*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`),
	labelRule("no.email.bare", constants.FieldEmail, 0,
		`([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`),
	labelRule("no.website.label", constants.FieldWebsite, 0,
		`(?im)^\s*nettside\s*:?\s*(\S+)`),
	labelRule("no.address.label", constants.FieldAddress, 0,
		`(?im)^\s*(?:post)?adresse\s*:?\s*(.+)$`),

	labelRule("no.customer.number", constants.FieldCustomerNumber, 0,
		`(?im)^\s*kunde(?:nr|nummer)\.?\s*:?\s*(\S+)`),
	labelRule("no.customer.name", constants.FieldCustomerName, 0,
		`(?im)^\s*kunde\s*:\s*(.+)$`),

	labelRule("no.invoice.number", constants.FieldInvoiceNumber, 0,
		`(?im)^\s*faktura(?:nr|nummer)\.?\s*:?\s*([A-Za-z0-9-]+)`),
	labelRule("no.invoice.date", constants.FieldInvoiceDate, 0,
		`(?im)^\s*fakturadato\s*:?\s*(\S+)`),
	labelRule("no.due.date", constants.FieldDueDate, 0,
		`(?im)^\s*forfallsdato\s*:?\s*(\S+)`),

	labelRule("no.contact.person", constants.FieldContactPerson, 0,
		`(?im)^\s*(?:vår kontakt|kontaktperson)\s*:?\s*(.+)$`),
	labelRule("no.project", constants.FieldProject, 0,
		`(?im)^\s*prosjekt\b\s*:?\s*(.+)$`),
	labelRule("no.delivery.date", constants.FieldDeliveryDate, 0,
		`(?im)^\s*leveransedato\s*:?\s*(\S+)`),
	labelRule("no.delivery.address", constants.FieldDeliveryAddress, 0,
		`(?im)^\s*leveranseadresse\s*:?\s*(.+)$`),

	labelRule("no.bank.account", constants.FieldBankAccount, 0,
		`(?im)^\s*kontonummer\s*:?\s*([0-9][0-9. ]{9,15})`),
	labelRule("no.kid", constants.FieldKID, 0,
		`(?im)^\s*kid\b\s*:?\s*([0-9]{2,25})`),

	labelRule("no.total.sum", constants.FieldTotal, 2,
		`(?im)^\s*(?:totalsum|sum\s+å\s+betale|å\s+betale)\s*:?\s*([0-9][0-9 .,]*[0-9]|[0-9])`),
	labelRule("no.total.contract", constants.FieldTotal, 1,
		`(?im)kontraktsum(?:\s+ekskl\.?\s*mva)?\s*:?\s*([0-9][0-9 .,]*[0-9]|[0-9])`),
	labelRule("no.total.amount", constants.FieldTotal, 0,
		`(?im)^\s*beløp\b\s*:?\s*([0-9][0-9 .,]*[0-9]|[0-9])`),
	labelRule("no.vat.amount", constants.FieldVATAmount, 0,
		`(?im)^\s*(?:mva\b|moms\b)(?:\s*\([0-9 %,.]+\))?\s*:?\s*([0-9][0-9 .,]*[0-9]|[0-9])`),
}
