// Package export produces tabular exports of a converted invoice's line
// items, for spreadsheet workflows that the document formats do not serve.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/document"
)

// Service renders line-item exports. It holds no state beyond a logger.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

var lineItemHeaders = []string{
	"Description",
	"Amount excl. VAT",
	"VAT rate",
	"VAT amount",
	"Amount incl. VAT",
}

func lineItemRecord(it document.LineItem) []string {
	return []string{
		it.Description,
		it.AmountExclVAT.StringFixed(2),
		it.VATRate.StringFixed(2),
		it.VATAmount.StringFixed(2),
		it.AmountInclVAT.StringFixed(2),
	}
}

// LineItemsXLSX returns an XLSX workbook with one row per line item plus
// trailing totals rows when the document carries totals.
func (s *Service) LineItemsXLSX(inv *document.Invoice) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Line Items"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for i, h := range lineItemHeaders {
		write(i+1, 1, h)
	}

	row := 2
	for _, it := range inv.LineItems {
		for col, v := range lineItemRecord(it) {
			write(col+1, row, v)
		}
		row++
	}

	if inv.ExtractedTotal != nil {
		write(1, row, "Total")
		write(5, row, inv.ExtractedTotal.StringFixed(2))
		row++
	}
	if inv.ComputedTotal != nil {
		write(1, row, "Line-item sum")
		write(5, row, inv.ComputedTotal.StringFixed(2))
	}

	_ = f.SetColWidth(sheet, "A", "A", 48)
	_ = f.SetColWidth(sheet, "B", "E", 16)

	if err := addSummarySheet(f, inv); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"invoice_id", inv.ID.String(),
		"invoice_number", inv.FieldValue(constants.FieldInvoiceNumber),
		"rows", len(inv.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// addSummarySheet writes the extracted header fields to a second sheet so
// the workbook carries the invoice identity alongside its rows.
func addSummarySheet(f *excelize.File, inv *document.Invoice) error {
	const sheet = "Invoice"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	row := 1
	for _, entry := range []struct{ label, field string }{
		{"Company", constants.FieldCompanyName},
		{"Organization number", constants.FieldOrgNumber},
		{"Customer", constants.FieldCustomerName},
		{"Invoice number", constants.FieldInvoiceNumber},
		{"Invoice date", constants.FieldInvoiceDate},
		{"Due date", constants.FieldDueDate},
		{"Bank account", constants.FieldBankAccount},
		{"KID", constants.FieldKID},
	} {
		v := inv.FieldValue(entry.field)
		if v == "" {
			continue
		}
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, labelCell, entry.label)
		_ = f.SetCellValue(sheet, valueCell, v)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 22)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	return nil
}

// LineItemsCSV returns the same rows as LineItemsXLSX in RFC 4180 form.
func (s *Service) LineItemsCSV(inv *document.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(lineItemHeaders); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	for _, it := range inv.LineItems {
		if err := w.Write(lineItemRecord(it)); err != nil {
			return nil, fmt.Errorf("csv write: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"invoice_id", inv.ID.String(),
		"rows", len(inv.LineItems),
	)
	return buf.Bytes(), nil
}
