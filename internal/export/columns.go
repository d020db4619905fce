// Package export renders catalog working sets into the two delivery formats:
// an XLSX spreadsheet and a paginated PDF document. Both exporters consume
// the same column descriptor table so field meaning is defined once.
package export

import (
	"strconv"
	"strings"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// Placeholder is rendered wherever a source value is absent; cells are never
// left blank
const Placeholder = "—"

// Column maps one output column to a catalog item attribute, fallback chain,
// or derived value
type Column struct {
	Key    string
	Header string
	Value  func(item *models.CatalogItem) string
}

// Columns returns the fixed, ordered export schema. The per-flag boolean
// columns at the tail follow the fixed equipment flag order.
func Columns() []Column {
	cols := []Column{
		{Key: "id", Header: "Código", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.ID) }},
		{Key: "title", Header: "Título", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.Title) }},
		{Key: "status", Header: "Status", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.Status) }},
		{Key: "price", Header: "Preço", Value: func(i *models.CatalogItem) string { return FormatPrice(i.Price) }},
		{Key: "city", Header: "Cidade", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.City) }},
		{Key: "state", Header: "Estado", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.State) }},
		{Key: "quantity", Header: "Quantidade", Value: func(i *models.CatalogItem) string { return strconv.Itoa(i.AvailableQuantity) }},
		{Key: "supplier", Header: "Fornecedor", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.SupplierDisplayName()) }},
		{Key: "supplierPhone", Header: "Telefone", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.SupplierPhone) }},
		{Key: "fabricationYear", Header: "Ano Fabricação", Value: func(i *models.CatalogItem) string { return yearOrPlaceholder(i.FabricationYear) }},
		{Key: "modelYear", Header: "Ano Modelo", Value: func(i *models.CatalogItem) string { return yearOrPlaceholder(i.ModelYear) }},
		{Key: "chassisManufacturer", Header: "Fabricante Chassi", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.ChassisManufacturer) }},
		{Key: "chassisModel", Header: "Modelo Chassi", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.ChassisModel) }},
		{Key: "bodyManufacturer", Header: "Fabricante Carroceria", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.BodyManufacturer) }},
		{Key: "bodyModel", Header: "Modelo Carroceria", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.BodyModel) }},
		{Key: "category", Header: "Categoria", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.Category) }},
		{Key: "subcategory", Header: "Subcategoria", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.Subcategory) }},
		{Key: "driveSystem", Header: "Tração", Value: func(i *models.CatalogItem) string { return orPlaceholder(string(i.DriveSystem)) }},
		{Key: "updatedAt", Header: "Atualizado em", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.UpdatedAt) }},
		{Key: "adPageUrl", Header: "Link do Anúncio", Value: func(i *models.CatalogItem) string { return orPlaceholder(i.AdPageURL) }},
		{Key: "optionals", Header: "Opcionais", Value: func(i *models.CatalogItem) string {
			return orPlaceholder(strings.Join(i.Optionals.EnabledLabels(), ", "))
		}},
	}

	for _, flag := range models.AllOptionalFlags() {
		get := flag.Get
		cols = append(cols, Column{
			Key:    "optional." + flag.Key,
			Header: flag.Label,
			Value: func(i *models.CatalogItem) string {
				return FormatBool(get(i.Optionals))
			},
		})
	}

	return cols
}

// ColumnByKey looks up a column descriptor by its stable key
func ColumnByKey(key string) (Column, bool) {
	for _, c := range Columns() {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// FormatPrice renders a price in Brazilian currency notation
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}
	return "R$ " + grouped.String() + "," + decPart
}

// FormatBool renders a localized yes/no
func FormatBool(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func yearOrPlaceholder(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}
