package models

import "strings"

// DriveSystem represents the traction layout extracted from a chassis model string
type DriveSystem string

// DriveSystemUnknown is the sentinel used when no traction token is present
const DriveSystemUnknown DriveSystem = "—"

// KnownDriveSystems lists every traction token the extractor recognizes
func KnownDriveSystems() []DriveSystem {
	return []DriveSystem{"2x2", "2x4", "4x2", "4x4", "6x2", "6x4"}
}

// Optionals is the fixed set of boolean equipment flags carried by every item.
// ReclinableSeats is derived from the free-text description during
// normalization; every other flag is read from the raw document.
type Optionals struct {
	AirConditioning bool `json:"airConditioning"`
	Bathroom        bool `json:"bathroom"`
	Fridge          bool `json:"fridge"`
	TV              bool `json:"tv"`
	SoundSystem     bool `json:"soundSystem"`
	Wifi            bool `json:"wifi"`
	Curtains        bool `json:"curtains"`
	LegSupport      bool `json:"legSupport"`
	Retarder        bool `json:"retarder"`
	ReclinableSeats bool `json:"reclinableSeats"`
}

// OptionalFlag describes one equipment flag: its stable key, the label shown
// on exports, and an accessor into Optionals
type OptionalFlag struct {
	Key   string
	Label string
	Get   func(o Optionals) bool
}

// AllOptionalFlags returns the equipment flags in their fixed export order
func AllOptionalFlags() []OptionalFlag {
	return []OptionalFlag{
		{Key: "airConditioning", Label: "Ar-condicionado", Get: func(o Optionals) bool { return o.AirConditioning }},
		{Key: "bathroom", Label: "Banheiro", Get: func(o Optionals) bool { return o.Bathroom }},
		{Key: "fridge", Label: "Geladeira", Get: func(o Optionals) bool { return o.Fridge }},
		{Key: "tv", Label: "TV", Get: func(o Optionals) bool { return o.TV }},
		{Key: "soundSystem", Label: "Som", Get: func(o Optionals) bool { return o.SoundSystem }},
		{Key: "wifi", Label: "Wi-Fi", Get: func(o Optionals) bool { return o.Wifi }},
		{Key: "curtains", Label: "Cortinas", Get: func(o Optionals) bool { return o.Curtains }},
		{Key: "legSupport", Label: "Apoio de perna", Get: func(o Optionals) bool { return o.LegSupport }},
		{Key: "retarder", Label: "Retarder", Get: func(o Optionals) bool { return o.Retarder }},
		{Key: "reclinableSeats", Label: "Poltronas reclináveis", Get: func(o Optionals) bool { return o.ReclinableSeats }},
	}
}

// Flag reads an equipment flag by its stable key; unknown keys are false
func (o Optionals) Flag(key string) bool {
	for _, f := range AllOptionalFlags() {
		if f.Key == key {
			return f.Get(o)
		}
	}
	return false
}

// EnabledLabels returns the labels of every enabled flag, in fixed order
func (o Optionals) EnabledLabels() []string {
	var labels []string
	for _, f := range AllOptionalFlags() {
		if f.Get(o) {
			labels = append(labels, f.Label)
		}
	}
	return labels
}

// CatalogItem is the canonical, fully-typed projection of one raw vehicle
// record. Items are immutable after normalization; edits replace the
// collection rather than mutating entries.
type CatalogItem struct {
	ID                  string      `json:"id"`
	Title               string      `json:"title"`
	Status              string      `json:"status"`
	Price               float64     `json:"price"`
	City                string      `json:"city"`
	State               string      `json:"state"`
	AvailableQuantity   int         `json:"availableQuantity"`
	SupplierCompanyName string      `json:"supplierCompanyName"`
	SupplierContactName string      `json:"supplierContactName"`
	SupplierPhone       string      `json:"supplierPhone"`
	FabricationYear     *int        `json:"fabricationYear"`
	ModelYear           *int        `json:"modelYear"`
	ChassisManufacturer string      `json:"chassisManufacturer"`
	ChassisModel        string      `json:"chassisModel"`
	BodyManufacturer    string      `json:"bodyManufacturer"`
	BodyModel           string      `json:"bodyModel"`
	Category            string      `json:"category"`
	Subcategory         string      `json:"subcategory"`
	DriveSystem         DriveSystem `json:"driveSystem"`
	Description         string      `json:"description"`
	ImageURL            string      `json:"imageUrl"`
	AllImages           []string    `json:"allImages"`
	AdPageURL           string      `json:"adPageUrl"`
	UpdatedAt           string      `json:"updatedAt"`
	Optionals           Optionals   `json:"optionals"`
}

// SupplierDisplayName returns the contact name, falling back to the company
// name when no contact is set
func (c *CatalogItem) SupplierDisplayName() string {
	if strings.TrimSpace(c.SupplierContactName) != "" {
		return c.SupplierContactName
	}
	return c.SupplierCompanyName
}

// Location returns "City/State" with empty parts omitted
func (c *CatalogItem) Location() string {
	city := strings.TrimSpace(c.City)
	state := strings.TrimSpace(c.State)
	switch {
	case city != "" && state != "":
		return city + "/" + state
	case city != "":
		return city
	default:
		return state
	}
}
