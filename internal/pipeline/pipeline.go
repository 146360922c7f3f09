// Package pipeline coordinates the conversion stages: normalize, detect
// language, extract fields and table rows, build the document, serialize.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/common"
	"github.com/invoicemd/invoicemd/internal/document"
	"github.com/invoicemd/invoicemd/internal/fields"
	"github.com/invoicemd/invoicemd/internal/language"
	"github.com/invoicemd/invoicemd/internal/ocr"
	"github.com/invoicemd/invoicemd/internal/serialize"
	"github.com/invoicemd/invoicemd/internal/table"
)

// Pipeline runs the full conversion. It is safe for concurrent use; all
// per-request state lives on the stack.
type Pipeline struct {
	logger *slog.Logger
	cfg    common.PipelineConfig
}

func New(cfg common.PipelineConfig, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, cfg: cfg}
}

// Run converts raw OCR text into a built document. The only fatal input
// condition is malformed input: empty (after trimming) or invalid UTF-8.
// Everything else degrades to warnings on the document.
func (p *Pipeline) Run(ctx context.Context, raw ocr.RawText) (*document.Invoice, error) {
	start := time.Now()

	if strings.TrimSpace(raw.Text) == "" {
		return nil, fmt.Errorf("%w: empty input", common.ErrMalformedInput)
	}
	if !utf8.ValidString(raw.Text) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", common.ErrMalformedInput)
	}

	norm := ocr.RawText{Text: ocr.Normalize(raw.Text), Boxes: raw.Boxes}

	fallback := language.Parse(p.cfg.DefaultLanguage)
	lang, conf := language.Detect(norm.Text, p.cfg.LanguageThreshold, fallback)
	p.logger.Debug("pipeline.language.detected",
		"language", string(lang),
		"confidence", conf,
	)

	// Field and table extraction are independent reads of the normalized
	// text, so they run concurrently.
	type fieldsOut struct{ cands []fields.Candidate }
	type tableOut struct{ res table.Result }

	fieldsCh := make(chan fieldsOut, 1)
	tableCh := make(chan tableOut, 1)
	go func() {
		fieldsCh <- fieldsOut{cands: fields.Extract(norm.Text, lang, norm.Boxes)}
	}()
	go func() {
		tableCh <- tableOut{res: table.Extract(norm.Text, norm.Boxes)}
	}()

	var cands []fields.Candidate
	var tbl table.Result
	for i := 0; i < 2; i++ {
		select {
		case out := <-fieldsCh:
			cands = out.cands
		case out := <-tableCh:
			tbl = out.res
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	tolerance, err := decimal.NewFromString(p.cfg.TotalTolerance)
	if err != nil {
		tolerance = decimal.New(1, -2)
	}
	inv := document.NewBuilder(tolerance, p.cfg.DefaultCountryCode).Build(lang, conf, cands, tbl)

	p.logger.Info("pipeline.run.ok",
		"invoice_id", inv.ID.String(),
		"language", string(inv.Language),
		"fields", len(cands),
		"line_items", len(inv.LineItems),
		"warnings", len(inv.Warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return inv, nil
}

// Convert runs the pipeline and serializes the result in one call.
func (p *Pipeline) Convert(ctx context.Context, raw ocr.RawText, format constants.OutputFormat) (string, *document.Invoice, error) {
	inv, err := p.Run(ctx, raw)
	if err != nil {
		return "", nil, err
	}
	out, err := serialize.Serialize(inv, format)
	if err != nil {
		return "", nil, err
	}
	return out, inv, nil
}
