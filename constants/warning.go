package constants

// Warning codes recorded on the document while assembly degrades gracefully.
const (
	WarnFieldInvalid   = "field_invalid"    // extracted but failed its checksum/format rule
	WarnFieldUnparsed  = "field_unparsed"   // extracted but could not be parsed to its type
	WarnTableShortfall = "table_shortfall"  // zero line items detected
	WarnRowDropped     = "row_dropped"      // a candidate table row failed the row grammar
	WarnTotalMismatch  = "total_mismatch"   // extracted total disagrees with line-item sum
)
