// Package search implements the catalog query pipeline: weighted fuzzy
// ranking, structural filtering, and stable sorting, in that fixed order.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// MatchThreshold is the acceptance score below which a fuzzy match is
// discarded. Tuned empirically; scores from the matcher are unbounded and
// penalize scattered matches with negative values.
const MatchThreshold = 0

// weightedField pairs an item attribute with its ranking weight.
// Identifier and title carry twice the weight of the remaining fields.
type weightedField struct {
	get    func(item *models.CatalogItem) string
	weight int
}

func rankedFields() []weightedField {
	return []weightedField{
		{get: func(i *models.CatalogItem) string { return i.ID }, weight: 2},
		{get: func(i *models.CatalogItem) string { return i.Title }, weight: 2},
		{get: func(i *models.CatalogItem) string { return i.City }, weight: 1},
		{get: func(i *models.CatalogItem) string { return i.State }, weight: 1},
		{get: func(i *models.CatalogItem) string { return i.Category }, weight: 1},
		{get: func(i *models.CatalogItem) string { return i.Subcategory }, weight: 1},
		{get: func(i *models.CatalogItem) string { return i.ChassisManufacturer }, weight: 1},
		{get: func(i *models.CatalogItem) string { return i.ChassisModel }, weight: 1},
		{get: func(i *models.CatalogItem) string { return i.SupplierCompanyName }, weight: 1},
		{get: func(i *models.CatalogItem) string { return i.SupplierContactName }, weight: 1},
		{get: func(i *models.CatalogItem) string { return i.SupplierPhone }, weight: 1},
	}
}

// Search produces the ordered subset of items matching the query, filters and
// sort directive. It never errors and never mutates its input slice.
func Search(items []models.CatalogItem, query string, filters models.SearchFilters, directive models.SortDirective) []models.CatalogItem {
	result := make([]models.CatalogItem, len(items))
	copy(result, items)

	query = strings.TrimSpace(query)
	ranked := false
	if query != "" {
		result = rankByQuery(result, query)
		ranked = true
	}

	result = applyFilters(result, filters)

	if directive.Field != models.SortRelevance || !ranked {
		result = sortItems(result, directive)
	}

	return result
}

// Score returns the best weighted fuzzy score of the query against the
// item's ranked fields, and whether any field matched at all
func Score(item *models.CatalogItem, query string) (int, bool) {
	best := 0
	matched := false
	for _, f := range rankedFields() {
		value := f.get(item)
		if value == "" {
			continue
		}
		matches := fuzzy.Find(query, []string{value})
		if len(matches) == 0 {
			continue
		}
		s := matches[0].Score * f.weight
		if !matched || s > best {
			best = s
		}
		matched = true
	}
	return best, matched
}

func rankByQuery(items []models.CatalogItem, query string) []models.CatalogItem {
	type scored struct {
		item  models.CatalogItem
		score int
	}

	accepted := make([]scored, 0, len(items))
	for _, item := range items {
		s, ok := Score(&item, query)
		if !ok || s < MatchThreshold {
			continue
		}
		accepted = append(accepted, scored{item: item, score: s})
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].score > accepted[j].score
	})

	out := make([]models.CatalogItem, len(accepted))
	for i, s := range accepted {
		out[i] = s.item
	}
	return out
}

// applyFilters keeps items satisfying every non-empty axis, preserving order.
// Numeric axes are skipped (not failed) when the item's own value is nil.
func applyFilters(items []models.CatalogItem, f models.SearchFilters) []models.CatalogItem {
	out := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if !matchesFilters(&item, f) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesFilters(item *models.CatalogItem, f models.SearchFilters) bool {
	if !inList(item.Category, f.Categories) {
		return false
	}
	if !inList(item.Subcategory, f.Subcategories) {
		return false
	}
	if !inList(item.City, f.Cities) {
		return false
	}
	if !inList(item.State, f.States) {
		return false
	}
	if !inList(item.Status, f.Statuses) {
		return false
	}
	if !intInRange(item.FabricationYear, f.FabricationYearMin, f.FabricationYearMax) {
		return false
	}
	if !intInRange(item.ModelYear, f.ModelYearMin, f.ModelYearMax) {
		return false
	}
	if f.PriceMin != nil && item.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && item.Price > *f.PriceMax {
		return false
	}
	for key, required := range f.RequiredOptionals {
		if required && !item.Optionals.Flag(key) {
			return false
		}
	}
	return true
}

func inList(value string, list []string) bool {
	if len(list) == 0 {
		return true
	}
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), value) {
			return true
		}
	}
	return false
}

func intInRange(value, min, max *int) bool {
	if value == nil {
		return true
	}
	if min != nil && *value < *min {
		return false
	}
	if max != nil && *value > *max {
		return false
	}
	return true
}

// sortItems stably orders items by the directive's field and direction.
// Nil numeric fields compare as zero; ties keep their prior relative order.
func sortItems(items []models.CatalogItem, directive models.SortDirective) []models.CatalogItem {
	var less func(a, b *models.CatalogItem) bool

	switch directive.Field {
	case models.SortPrice:
		less = func(a, b *models.CatalogItem) bool { return a.Price < b.Price }
	case models.SortModelYear:
		less = func(a, b *models.CatalogItem) bool { return intOrZero(a.ModelYear) < intOrZero(b.ModelYear) }
	case models.SortUpdatedAt:
		less = func(a, b *models.CatalogItem) bool { return parseTimestamp(a.UpdatedAt).Before(parseTimestamp(b.UpdatedAt)) }
	default:
		return items
	}

	descending := directive.Direction == models.SortDesc
	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			return less(&items[j], &items[i])
		}
		return less(&items[i], &items[j])
	})
	return items
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
