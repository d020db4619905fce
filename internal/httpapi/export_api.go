package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/artifacts"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/catalog"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/export"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportAPI handles spreadsheet and document export requests
type ExportAPI struct {
	catalogSvc  *catalog.Service
	spreadsheet *export.SpreadsheetExporter
	document    *export.DocumentExporter
	artifacts   artifacts.Store
	metrics     *Metrics
	brand       string
	logger      *logging.Logger
}

// NewExportAPI creates a new export API handler
func NewExportAPI(catalogSvc *catalog.Service, spreadsheet *export.SpreadsheetExporter, document *export.DocumentExporter, store artifacts.Store, metrics *Metrics, brand string, logger *logging.Logger) *ExportAPI {
	return &ExportAPI{
		catalogSvc:  catalogSvc,
		spreadsheet: spreadsheet,
		document:    document,
		artifacts:   store,
		metrics:     metrics,
		brand:       brand,
		logger:      logger,
	}
}

// RegisterRoutes registers export routes on the given mux
func (api *ExportAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/catalog/export/spreadsheet", corsMiddleware(api.handleSpreadsheet))
	mux.HandleFunc("/api/catalog/export/document", corsMiddleware(api.handleDocument))
}

// exportRequest selects the working set: explicit ids win over a
// query/filter/sort selection of the whole collection
type exportRequest struct {
	IDs     []string              `json:"ids,omitempty"`
	Query   string                `json:"query,omitempty"`
	Filters models.SearchFilters  `json:"filters"`
	Sort    *models.SortDirective `json:"sort,omitempty"`
}

func (api *ExportAPI) workingSet(req exportRequest) []models.CatalogItem {
	if len(req.IDs) > 0 {
		return api.catalogSvc.GetByIDs(req.IDs)
	}

	directive := models.SortDirective{Field: models.SortRelevance, Direction: models.SortAsc}
	if req.Sort != nil {
		directive = *req.Sort
	}
	return api.catalogSvc.Search(req.Query, req.Filters, directive)
}

// handleSpreadsheet handles POST /api/catalog/export/spreadsheet
func (api *ExportAPI) handleSpreadsheet(w http.ResponseWriter, r *http.Request) {
	req, ok := api.decodeRequest(w, r)
	if !ok {
		return
	}

	items := api.workingSet(req)
	filename := export.SpreadsheetFilename(api.brand, time.Now())

	var buf bytes.Buffer
	start := time.Now()
	if err := api.spreadsheet.Export(items, &buf); err != nil {
		api.exportFailed(w, "spreadsheet", err)
		return
	}
	api.observe("spreadsheet", start)

	api.deliver(w, r, filename, contentTypeXLSX, buf.Bytes())
}

// handleDocument handles POST /api/catalog/export/document. A single id uses
// the full single-item layout; anything else uses the batch layout.
func (api *ExportAPI) handleDocument(w http.ResponseWriter, r *http.Request) {
	req, ok := api.decodeRequest(w, r)
	if !ok {
		return
	}

	items := api.workingSet(req)
	now := time.Now()

	var buf bytes.Buffer
	var filename string
	start := time.Now()

	if len(items) == 1 {
		filename = export.SingleDocumentFilename(api.brand, &items[0], now)
		if err := api.document.ExportSingle(r.Context(), items[0], &buf); err != nil {
			api.exportFailed(w, "document", err)
			return
		}
	} else {
		filename = export.BatchDocumentFilename(api.brand, now)
		if err := api.document.ExportBatch(r.Context(), items, &buf); err != nil {
			api.exportFailed(w, "document", err)
			return
		}
	}
	api.observe("document", start)

	api.deliver(w, r, filename, contentTypePDF, buf.Bytes())
}

func (api *ExportAPI) decodeRequest(w http.ResponseWriter, r *http.Request) (exportRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return exportRequest{}, false
	}

	var req exportRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return exportRequest{}, false
		}
	}
	return req, true
}

func (api *ExportAPI) deliver(w http.ResponseWriter, r *http.Request, filename, contentType string, data []byte) {
	if err := api.artifacts.Save(r.Context(), filename, data, contentType); err != nil {
		// The download still succeeds; artifact persistence is best-effort
		api.logger.Warn("Failed to persist export artifact", logging.WithFields(map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		}))
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (api *ExportAPI) exportFailed(w http.ResponseWriter, kind string, err error) {
	if api.metrics != nil {
		api.metrics.ExportErrorsTotal.WithLabelValues(kind).Inc()
	}
	api.logger.Error("Export failed", logging.WithFields(map[string]interface{}{
		"kind":  kind,
		"error": err.Error(),
	}))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (api *ExportAPI) observe(kind string, start time.Time) {
	if api.metrics == nil {
		return
	}
	api.metrics.ExportsTotal.WithLabelValues(kind).Inc()
	api.metrics.ExportDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
