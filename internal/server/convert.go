package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/common"
	"github.com/invoicemd/invoicemd/internal/document"
	"github.com/invoicemd/invoicemd/internal/ocr"
	"github.com/invoicemd/invoicemd/internal/pdftext"
)

// convertRequest is the JSON body for text conversion. Boxes are optional
// positional hints from an upstream OCR engine.
type convertRequest struct {
	Text   string    `json:"text" binding:"required"`
	Boxes  []ocr.Box `json:"boxes"`
	Format string    `json:"format"`
}

// handleConvert converts already-extracted OCR text.
func (s *Server) handleConvert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	format, err := parseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, inv, err := s.pipeline.Convert(c.Request.Context(), ocr.RawText{Text: req.Text, Boxes: req.Boxes}, format)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.writeDocument(c, out, inv, format)
}

// handleConvertPDF accepts a multipart PDF upload, extracts its text layer,
// and runs the same conversion.
func (s *Server) handleConvertPDF(c *gin.Context) {
	format, err := parseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload: " + err.Error()})
		return
	}
	if fh.Size > s.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload limit"})
		return
	}

	// the pdf library needs a seekable file on disk
	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	src, err := fh.Open()
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer src.Close()
	if _, err := io.Copy(tmp, src); err != nil {
		s.writeError(c, err)
		return
	}

	raw, err := pdftext.Extract(tmp.Name())
	if err != nil {
		s.logger.Warn("convert.pdf.extract_failed", "filename", filepath.Base(fh.Filename), "err", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "pdf text extraction failed: " + err.Error()})
		return
	}

	out, inv, err := s.pipeline.Convert(c.Request.Context(), raw, format)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.writeDocument(c, out, inv, format)
}

var formatContentTypes = map[constants.OutputFormat]string{
	constants.FormatMarkdown: "text/markdown; charset=utf-8",
	constants.FormatJSON:     "application/json; charset=utf-8",
	constants.FormatXML:      "application/xml; charset=utf-8",
	constants.FormatYAML:     "application/yaml; charset=utf-8",
	constants.FormatHTML:     "text/html; charset=utf-8",
}

func (s *Server) writeDocument(c *gin.Context, out string, inv *document.Invoice, format constants.OutputFormat) {
	c.Header("X-Invoice-Id", inv.ID.String())
	c.Header("X-Invoice-Language", string(inv.Language))
	c.Data(http.StatusOK, formatContentTypes[format], []byte(out))
}

func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrMalformedInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("http.internal_error", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseFormat resolves the requested output format, defaulting to markdown.
func parseFormat(v string) (constants.OutputFormat, error) {
	if v == "" {
		return constants.FormatMarkdown, nil
	}
	f, ok := constants.ParseFormat(v)
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, v)
	}
	return f, nil
}
