package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/invoicemd/invoicemd/internal/common"
	"github.com/invoicemd/invoicemd/internal/export"
	"github.com/invoicemd/invoicemd/internal/pipeline"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	cfg := common.ServerConfig{MaxUploadBytes: 1 << 20}
	p := pipeline.New(common.PipelineConfig{
		DefaultLanguage:   "no",
		LanguageThreshold: 0.2,
		TotalTolerance:    "0.01",
	}, nil)
	return New(p, export.NewService(nil), cfg, nil)
}

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testServer().Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
}

func TestConvertText(t *testing.T) {
	body := `{"text": "Byggmester Bob AS\nFakturanummer: 1122\nTotalsum: 1 000,00", "format": "markdown"}`
	w := doRequest(t, http.MethodPost, "/v1/convert", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("X-Invoice-Language"); got != "no" {
		t.Errorf("language header: got %q", got)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/markdown") {
		t.Errorf("content type: got %q", got)
	}
	if !strings.Contains(w.Body.String(), "- **Invoice number**: 1122") {
		t.Errorf("body missing invoice number:\n%s", w.Body.String())
	}
}

func TestConvertJSONFormat(t *testing.T) {
	body := `{"text": "Fakturanummer: 1122", "format": "json"}`
	w := doRequest(t, http.MethodPost, "/v1/convert", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
}

func TestConvertRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{"format": "markdown"}`},
		{"empty text", `{"text": "   ", "format": "markdown"}`},
		{"unknown format", `{"text": "Fakturanummer: 1122", "format": "docx"}`},
		{"not json", `faktura`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, http.MethodPost, "/v1/convert", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400 (%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	body := `{"text": "Graving  800,00  1 000,00", "kind": "csv"}`
	w := doRequest(t, http.MethodPost, "/v1/export", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "line-items.csv") {
		t.Errorf("disposition: got %q", got)
	}
	if !strings.Contains(w.Body.String(), "Graving") {
		t.Errorf("csv missing row:\n%s", w.Body.String())
	}
}

func TestExportRejectsUnknownKind(t *testing.T) {
	w := doRequest(t, http.MethodPost, "/v1/export", `{"text": "Graving  800,00  1 000,00", "kind": "pdf"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}
