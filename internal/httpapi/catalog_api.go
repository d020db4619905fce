package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/catalog"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// CatalogAPI handles search, facet, and reload requests
type CatalogAPI struct {
	catalogSvc *catalog.Service
	metrics    *Metrics
	logger     *logging.Logger
}

// NewCatalogAPI creates a new catalog API handler
func NewCatalogAPI(catalogSvc *catalog.Service, metrics *Metrics, logger *logging.Logger) *CatalogAPI {
	return &CatalogAPI{catalogSvc: catalogSvc, metrics: metrics, logger: logger}
}

// RegisterRoutes registers catalog routes on the given mux
func (api *CatalogAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/catalog/search", corsMiddleware(api.handleSearch))
	mux.HandleFunc("/api/catalog/facets", corsMiddleware(api.handleFacets))
	mux.HandleFunc("/api/catalog/reload", corsMiddleware(api.handleReload))
}

// handleSearch handles GET /api/catalog/search
func (api *CatalogAPI) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	q := query.Get("q")
	filters := parseFilters(query)
	directive := parseSort(query)

	items := api.catalogSvc.Search(q, filters, directive)
	if api.metrics != nil {
		api.metrics.SearchesTotal.Inc()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":      items,
		"totalCount": len(items),
		"query":      q,
	})
}

// handleFacets handles GET /api/catalog/facets
func (api *CatalogAPI) handleFacets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, api.catalogSvc.Facets())
}

// handleReload handles POST /api/catalog/reload
func (api *CatalogAPI) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	if err := api.catalogSvc.Load(ctx); err != nil {
		api.logger.Error("Catalog reload failed", logging.WithField("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"items":  api.catalogSvc.Count(),
	})
}

// parseFilters reads the structural filter axes from query parameters.
// List axes are comma-separated; absent parameters leave an axis open.
func parseFilters(query url.Values) models.SearchFilters {
	f := models.SearchFilters{
		Categories:    splitList(query.Get("categories")),
		Subcategories: splitList(query.Get("subcategories")),
		Cities:        splitList(query.Get("cities")),
		States:        splitList(query.Get("states")),
		Statuses:      splitList(query.Get("statuses")),
	}

	f.FabricationYearMin = parseIntParam(query.Get("fabricationYearMin"))
	f.FabricationYearMax = parseIntParam(query.Get("fabricationYearMax"))
	f.ModelYearMin = parseIntParam(query.Get("modelYearMin"))
	f.ModelYearMax = parseIntParam(query.Get("modelYearMax"))
	f.PriceMin = parseFloatParam(query.Get("priceMin"))
	f.PriceMax = parseFloatParam(query.Get("priceMax"))

	if opts := splitList(query.Get("optionals")); len(opts) > 0 {
		f.RequiredOptionals = make(map[string]bool, len(opts))
		for _, key := range opts {
			f.RequiredOptionals[key] = true
		}
	}

	return f
}

func parseSort(query url.Values) models.SortDirective {
	directive := models.SortDirective{
		Field:     models.SortRelevance,
		Direction: models.SortAsc,
	}

	switch models.SortField(query.Get("sort")) {
	case models.SortPrice:
		directive.Field = models.SortPrice
	case models.SortModelYear:
		directive.Field = models.SortModelYear
	case models.SortUpdatedAt:
		directive.Field = models.SortUpdatedAt
	}

	if query.Get("dir") == string(models.SortDesc) {
		directive.Direction = models.SortDesc
	}
	return directive
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIntParam(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
