package models

// RawRecord is the untrusted, loosely-shaped document describing one vehicle
// as it arrives from the data source. Every group and field is optional;
// nothing here is safe to use before normalization.
type RawRecord struct {
	ProductIdentification *RawProductIdentification `json:"productIdentification,omitempty"`
	Location              *RawLocation              `json:"location,omitempty"`
	Media                 *RawMedia                 `json:"media,omitempty"`
	Chassis               *RawChassis               `json:"chassisInfo,omitempty"`
	Category              *RawCategory              `json:"category,omitempty"`
	Optionals             *RawOptionals             `json:"optionals,omitempty"`
	Supplier              *RawSupplier              `json:"supplier,omitempty"`
	Description           string                    `json:"description,omitempty"`
}

// RawDecimal mirrors the Mongo extended-JSON decimal wrapper
type RawDecimal struct {
	NumberDecimal string `json:"$numberDecimal"`
}

// RawProductIdentification carries the identification group of a raw record
type RawProductIdentification struct {
	ID                string      `json:"id,omitempty"`
	Title             string      `json:"title,omitempty"`
	Status            string      `json:"status,omitempty"`
	Price             *RawDecimal `json:"price,omitempty"`
	AvailableQuantity *int        `json:"availableQuantity,omitempty"`
	UpdatedAt         string      `json:"updatedAt,omitempty"`
}

// RawLocation carries the location group of a raw record
type RawLocation struct {
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// RawMedia carries the media URL lists of a raw record. Treated images come
// first in the aggregated gallery, originals after.
type RawMedia struct {
	TreatedImages  []string `json:"treatedImages,omitempty"`
	OriginalImages []string `json:"originalImages,omitempty"`
}

// RawChassis carries the chassis/body group of a raw record
type RawChassis struct {
	FabricationYear     *int   `json:"fabricationYear,omitempty"`
	ModelYear           *int   `json:"modelYear,omitempty"`
	ChassisManufacturer string `json:"chassisManufacturer,omitempty"`
	ChassisModel        string `json:"chassisModel,omitempty"`
	BodyManufacturer    string `json:"bodyManufacturer,omitempty"`
	BodyModel           string `json:"bodyModel,omitempty"`
}

// RawCategory carries the category group of a raw record
type RawCategory struct {
	Name        string `json:"name,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// RawOptionals carries the structured equipment flags of a raw record.
// Reclinable seats is intentionally absent: it only exists as a phrase in the
// free-text description.
type RawOptionals struct {
	AirConditioning *bool `json:"airConditioning,omitempty"`
	Bathroom        *bool `json:"bathroom,omitempty"`
	Fridge          *bool `json:"fridge,omitempty"`
	TV              *bool `json:"tv,omitempty"`
	SoundSystem     *bool `json:"soundSystem,omitempty"`
	Wifi            *bool `json:"wifi,omitempty"`
	Curtains        *bool `json:"curtains,omitempty"`
	LegSupport      *bool `json:"legSupport,omitempty"`
	Retarder        *bool `json:"retarder,omitempty"`
}

// RawSupplier carries the supplier group of a raw record
type RawSupplier struct {
	CompanyName string `json:"companyName,omitempty"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone,omitempty"`
}
