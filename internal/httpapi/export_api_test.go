package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/artifacts"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/export"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/images"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/testutil"
)

func newExportAPI(t *testing.T) *ExportAPI {
	t.Helper()
	svc := loadedCatalog(t, &fakeLoader{records: testRecords()})
	logger := testutil.NullLogger()
	spreadsheet := export.NewSpreadsheetExporter(logger)
	document := export.NewDocumentExporter(images.NewResolver(nil, nil, logger), logger)
	return NewExportAPI(svc, spreadsheet, document, artifacts.NopStore{}, nil, "VEICULOS", logger)
}

func TestHandleSpreadsheet(t *testing.T) {
	api := newExportAPI(t)

	body := strings.NewReader(`{"query": ""}`)
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/export/spreadsheet", body)
	rec := httptest.NewRecorder()
	api.handleSpreadsheet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != contentTypeXLSX {
		t.Errorf("Content-Type = %q", got)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="VEICULOS-PESQUISA-`) {
		t.Errorf("Content-Disposition = %q", disposition)
	}
	if !strings.HasSuffix(disposition, `.xlsx"`) {
		t.Errorf("Content-Disposition = %q, want .xlsx suffix", disposition)
	}

	// XLSX containers are zip archives
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("body is not a zip archive")
	}
}

func TestHandleDocumentSingle(t *testing.T) {
	api := newExportAPI(t)

	body := strings.NewReader(`{"ids": ["VH-001"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/export/document", body)
	rec := httptest.NewRecorder()
	api.handleDocument(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != contentTypePDF {
		t.Errorf("Content-Type = %q", got)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="VEICULOS-RELATORIO-VH-001-`) {
		t.Errorf("Content-Disposition = %q, want single-item filename", disposition)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestHandleDocumentBatch(t *testing.T) {
	api := newExportAPI(t)

	body := strings.NewReader(`{"ids": ["VH-001", "VH-002"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/export/document", body)
	rec := httptest.NewRecorder()
	api.handleDocument(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="VEICULOS-RELATORIOS-`) {
		t.Errorf("Content-Disposition = %q, want batch filename", disposition)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestHandleDocumentIDsWinOverQuery(t *testing.T) {
	api := newExportAPI(t)

	// ids select VH-002 even though the query would match VH-001
	body := strings.NewReader(`{"ids": ["VH-002"], "query": "marcopolo"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/export/document", body)
	rec := httptest.NewRecorder()
	api.handleDocument(rec, req)

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="VEICULOS-RELATORIO-VH-002-`) {
		t.Errorf("Content-Disposition = %q, want VH-002 single filename", disposition)
	}
}

func TestHandleExportMethodNotAllowed(t *testing.T) {
	api := newExportAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/export/spreadsheet", nil)
	rec := httptest.NewRecorder()
	api.handleSpreadsheet(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleExportInvalidBody(t *testing.T) {
	api := newExportAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/export/spreadsheet", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	api.handleSpreadsheet(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleExportEmptyBody(t *testing.T) {
	api := newExportAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/export/spreadsheet", nil)
	rec := httptest.NewRecorder()
	api.handleSpreadsheet(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for empty body (full collection export)", rec.Code)
	}
}
