package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/artifacts"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/catalog"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/export"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
)

// Server exposes the catalog pipeline over HTTP
type Server struct {
	catalogSvc  *catalog.Service
	spreadsheet *export.SpreadsheetExporter
	document    *export.DocumentExporter
	artifacts   artifacts.Store
	metrics     *Metrics
	brand       string
	logger      *logging.Logger
	server      *http.Server
}

// New creates the HTTP server
func New(catalogSvc *catalog.Service, spreadsheet *export.SpreadsheetExporter, document *export.DocumentExporter, store artifacts.Store, metrics *Metrics, brand string, logger *logging.Logger) *Server {
	if store == nil {
		store = artifacts.NopStore{}
	}
	return &Server{
		catalogSvc:  catalogSvc,
		spreadsheet: spreadsheet,
		document:    document,
		artifacts:   store,
		metrics:     metrics,
		brand:       brand,
		logger:      logger,
	}
}

func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()

	catalogAPI := NewCatalogAPI(s.catalogSvc, s.metrics, s.logger)
	catalogAPI.RegisterRoutes(mux, s.corsMiddleware)

	exportAPI := NewExportAPI(s.catalogSvc, s.spreadsheet, s.document, s.artifacts, s.metrics, s.brand, s.logger)
	exportAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Health check
	mux.HandleFunc("/api/health", s.handleHealth)

	if s.metrics != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	}

	s.server = &http.Server{
		Addr:    addr,
		Handler: mux,
		// No write timeout: batch document exports resolve images
		// sequentially and may legitimately run long
		ReadTimeout: 15 * time.Second,
	}

	s.logger.Info("HTTP API server starting", logging.WithField("addr", addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Header().Set("X-Request-ID", uuid.NewString())
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"items":  s.catalogSvc.Count(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
