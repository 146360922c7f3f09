package fields

import "github.com/invoicemd/invoicemd/constants"

var englishRules = []Rule{
	firstLineRule("en.company.letterhead", constants.FieldCompanyName, 0),

	labelRule("en.orgnr.label", constants.FieldOrgNumber, 1,
		`(?im)(?:org(?:ani[sz]ation)?\s*(?:no|number)\.?|vat\s*(?:reg(?:istration)?)?\.?\s*(?:no|number)?)\s*:?\s*((?:NO\s*)?[0-9][0-9 .]{7,13}[0-9](?:\s*MVA)?)`),
	labelRule("en.orgnr.mva", constants.FieldOrgNumber, 0,
		`(?im)\b(NO\s*[0-9]{3}\s*[0-9]{3}\s*[0-9]{3}\s*MVA)\b`),

	labelRule("en.phone.label", constants.FieldPhone, 0,
		`(?im)^\s*(?:phone|telephone|tel\.?|mobile)\s*:?\s*(\+?[0-9][0-9 ()-]{6,17})`),
	labelRule("en.email.label", constants.FieldEmail, 1,
		`(?im)^\s*e-?mail\s*:?\s*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`),
	labelRule("en.email.bare", constants.FieldEmail, 0,
		`([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`),
	labelRule("en.website.label", constants.FieldWebsite, 0,
		`(?im)^\s*(?:website|web)\s*:?\s*(\S+)`),
	labelRule("en.address.label", constants.FieldAddress, 0,
		`(?im)^\s*address\s*:?\s*(.+)$`),

	labelRule("en.customer.number", constants.FieldCustomerNumber, 0,
		`(?im)^\s*customer\s*(?:no\b|number\b|id\b)\.?\s*:?\s*(\S+)`),
	labelRule("en.customer.name", constants.FieldCustomerName, 0,
		`(?im)^\s*(?:customer|bill\s+to)\s*:\s*(.+)$`),

	labelRule("en.invoice.number", constants.FieldInvoiceNumber, 0,
		`(?im)^\s*invoice\s*(?:no\b|number\b|#)\.?\s*:?\s*([A-Za-z0-9-]+)`),
	labelRule("en.invoice.date", constants.FieldInvoiceDate, 0,
		`(?im)^\s*(?:invoice\s+)?date\b\s*:?\s*(.+)$`),
	labelRule("en.due.date", constants.FieldDueDate, 0,
		`(?im)^\s*(?:due\s+date|payment\s+due)\s*:?\s*(.+)$`),

	labelRule("en.contact.person", constants.FieldContactPerson, 0,
		`(?im)^\s*(?:contact(?:\s+person)?|your\s+contact)\s*:?\s*(.+)$`),
	labelRule("en.project", constants.FieldProject, 0,
		`(?im)^\s*project\s*:?\s*(.+)$`),
	labelRule("en.delivery.date", constants.FieldDeliveryDate, 0,
		`(?im)^\s*delivery\s+date\s*:?\s*(\S+)`),
	labelRule("en.delivery.address", constants.FieldDeliveryAddress, 0,
		`(?im)^\s*delivery\s+address\s*:?\s*(.+)$`),

	labelRule("en.bank.account", constants.FieldBankAccount, 0,
		`(?im)^\s*(?:bank\s+)?account\s*(?:no\b|number\b)?\.?\s*:?\s*([0-9][0-9. ]{9,15})`),
	labelRule("en.kid", constants.FieldKID, 0,
		`(?im)^\s*(?:kid\b|payment\s+reference|reference\b)\s*:?\s*([0-9]{2,25})`),

	labelRule("en.total.due", constants.FieldTotal, 1,
		`(?im)^\s*(?:total\s+(?:amount\s+)?due|amount\s+due|balance\s+due)\s*:?\s*[$£€]?\s*([0-9][0-9 .,]*[0-9]|[0-9])`),
	labelRule("en.total.label", constants.FieldTotal, 0,
		`(?im)^\s*total\b(?:\s+amount)?\s*:?\s*[$£€]?\s*([0-9][0-9 .,]*[0-9]|[0-9])`),
	labelRule("en.vat.amount", constants.FieldVATAmount, 0,
		`(?im)^\s*(?:vat\b|tax\b)(?:\s+amount)?(?:\s*\([0-9 %,.]+\))?\s*:?\s*[$£€]?\s*([0-9][0-9 .,]*[0-9]|[0-9])`),
}
