// Package catalog holds the normalized in-memory vehicle collection and
// fronts the search engine for callers. Items are derived once per load and
// immutable afterwards; a reload swaps the whole collection.
package catalog

import (
	"context"
	"sync"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/normalizer"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/search"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/source"
)

// Service owns the catalog collection
type Service struct {
	loader source.Loader
	logger *logging.Logger

	mu    sync.RWMutex
	items []models.CatalogItem
}

// NewService creates a catalog service backed by the given loader
func NewService(loader source.Loader, logger *logging.Logger) *Service {
	return &Service{
		loader: loader,
		logger: logger,
		items:  []models.CatalogItem{},
	}
}

// Load fetches raw records from the data source, normalizes them, and
// replaces the in-memory collection
func (s *Service) Load(ctx context.Context) error {
	raws, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}

	items := normalizer.NormalizeAll(raws)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.Info("Catalog loaded", logging.WithFields(map[string]interface{}{
		"source": s.loader.Name(),
		"items":  len(items),
	}))
	return nil
}

// Items returns a snapshot copy of the current collection
func (s *Service) Items() []models.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the current collection size
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Search runs the query/filter/sort pipeline over the current collection
func (s *Service) Search(query string, filters models.SearchFilters, sort models.SortDirective) []models.CatalogItem {
	return search.Search(s.Items(), query, filters, sort)
}

// GetByIDs returns the items matching the given ids, in the ids' order.
// Unknown ids are skipped.
func (s *Service) GetByIDs(ids []string) []models.CatalogItem {
	items := s.Items()

	byID := make(map[string]models.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	out := make([]models.CatalogItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Facets describes the filterable surface of the current collection
type Facets struct {
	Categories    []string      `json:"categories"`
	Subcategories []string      `json:"subcategories"`
	Cities        []string      `json:"cities"`
	States        []string      `json:"states"`
	Statuses      []string      `json:"statuses"`
	PriceRange    *NumericRange `json:"priceRange,omitempty"`
	FabYearRange  *NumericRange `json:"fabricationYearRange,omitempty"`
	ModelYrRange  *NumericRange `json:"modelYearRange,omitempty"`
}

// NumericRange is an inclusive min/max pair for seeding filter bounds
type NumericRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Facets computes distinct values and numeric ranges over the collection
func (s *Service) Facets() Facets {
	items := s.Items()

	f := Facets{
		Categories:    search.DistinctValues(items, search.FieldCategory),
		Subcategories: search.DistinctValues(items, search.FieldSubcategory),
		Cities:        search.DistinctValues(items, search.FieldCity),
		States:        search.DistinctValues(items, search.FieldState),
		Statuses:      search.DistinctValues(items, search.FieldStatus),
	}

	if min, max, ok := search.NumericRange(items, search.FieldPrice); ok {
		f.PriceRange = &NumericRange{Min: min, Max: max}
	}
	if min, max, ok := search.NumericRange(items, search.FieldFabricationYear); ok {
		f.FabYearRange = &NumericRange{Min: min, Max: max}
	}
	if min, max, ok := search.NumericRange(items, search.FieldModelYear); ok {
		f.ModelYrRange = &NumericRange{Min: min, Max: max}
	}

	return f
}
