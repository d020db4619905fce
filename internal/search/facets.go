package search

import (
	"sort"
	"strings"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// CategoricalField names a string attribute usable for facet extraction
type CategoricalField string

const (
	FieldCategory    CategoricalField = "category"
	FieldSubcategory CategoricalField = "subcategory"
	FieldCity        CategoricalField = "city"
	FieldState       CategoricalField = "state"
	FieldStatus      CategoricalField = "status"
)

// NumericField names a numeric attribute usable for range extraction
type NumericField string

const (
	FieldPrice           NumericField = "price"
	FieldFabricationYear NumericField = "fabricationYear"
	FieldModelYear       NumericField = "modelYear"
)

// DistinctValues returns the sorted, de-duplicated non-empty values of one
// categorical field across the collection. Used to populate filter choices.
func DistinctValues(items []models.CatalogItem, field CategoricalField) []string {
	seen := make(map[string]string)
	for i := range items {
		v := strings.TrimSpace(categoricalValue(&items[i], field))
		if v == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(v)]; !ok {
			seen[strings.ToLower(v)] = v
		}
	}

	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// NumericRange returns the min and max of one numeric field across the
// collection. ok is false when no item carries a value for that field.
func NumericRange(items []models.CatalogItem, field NumericField) (min, max float64, ok bool) {
	for i := range items {
		v, present := numericValue(&items[i], field)
		if !present {
			continue
		}
		if !ok || v < min {
			min = v
		}
		if !ok || v > max {
			max = v
		}
		ok = true
	}
	return min, max, ok
}

func categoricalValue(item *models.CatalogItem, field CategoricalField) string {
	switch field {
	case FieldCategory:
		return item.Category
	case FieldSubcategory:
		return item.Subcategory
	case FieldCity:
		return item.City
	case FieldState:
		return item.State
	case FieldStatus:
		return item.Status
	default:
		return ""
	}
}

func numericValue(item *models.CatalogItem, field NumericField) (float64, bool) {
	switch field {
	case FieldPrice:
		return item.Price, true
	case FieldFabricationYear:
		if item.FabricationYear == nil {
			return 0, false
		}
		return float64(*item.FabricationYear), true
	case FieldModelYear:
		if item.ModelYear == nil {
			return 0, false
		}
		return float64(*item.ModelYear), true
	default:
		return 0, false
	}
}
