package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoicemd/invoicemd/internal/ocr"
)

// exportRequest converts text and returns the line items as a spreadsheet
// instead of a document format.
type exportRequest struct {
	Text  string    `json:"text" binding:"required"`
	Boxes []ocr.Box `json:"boxes"`
	// Kind is "csv" or "xlsx"; defaults to xlsx.
	Kind string `json:"kind"`
}

func (s *Server) handleExport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Kind == "" {
		req.Kind = "xlsx"
	}
	if req.Kind != "csv" && req.Kind != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be csv or xlsx"})
		return
	}

	inv, err := s.pipeline.Run(c.Request.Context(), ocr.RawText{Text: req.Text, Boxes: req.Boxes})
	if err != nil {
		s.writeError(c, err)
		return
	}

	var data []byte
	var contentType, filename string
	switch req.Kind {
	case "csv":
		data, err = s.exports.LineItemsCSV(inv)
		contentType = "text/csv; charset=utf-8"
		filename = "line-items.csv"
	default:
		data, err = s.exports.LineItemsXLSX(inv)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "line-items.xlsx"
	}
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.Header("X-Invoice-Id", inv.ID.String())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
