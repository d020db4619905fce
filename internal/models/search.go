package models

// SortField selects which attribute orders a search result
type SortField string

const (
	SortRelevance SortField = "relevance"
	SortPrice     SortField = "price"
	SortModelYear SortField = "modelYear"
	SortUpdatedAt SortField = "updatedAt"
)

// SortDirection selects ascending or descending order
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortDirective pairs a sort field with a direction. Relevance is only
// meaningful alongside a non-blank query; otherwise insertion order is kept.
type SortDirective struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// SearchFilters is the structural filter set applied after fuzzy ranking.
// An empty list, nil bound, or omitted flag leaves that axis unrestricted.
type SearchFilters struct {
	Categories    []string `json:"categories,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
	Cities        []string `json:"cities,omitempty"`
	States        []string `json:"states,omitempty"`
	Statuses      []string `json:"statuses,omitempty"`

	FabricationYearMin *int `json:"fabricationYearMin,omitempty"`
	FabricationYearMax *int `json:"fabricationYearMax,omitempty"`
	ModelYearMin       *int `json:"modelYearMin,omitempty"`
	ModelYearMax       *int `json:"modelYearMax,omitempty"`

	PriceMin *float64 `json:"priceMin,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`

	// RequiredOptionals maps equipment flag keys to true when the flag must
	// be present. False/absent entries impose no constraint.
	RequiredOptionals map[string]bool `json:"requiredOptionals,omitempty"`
}
