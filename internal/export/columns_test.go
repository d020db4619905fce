package export

import (
	"strings"
	"testing"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

func TestColumnsSchema(t *testing.T) {
	cols := Columns()

	// 21 base columns plus one per equipment flag
	want := 21 + len(models.AllOptionalFlags())
	if len(cols) != want {
		t.Fatalf("len(Columns()) = %d, want %d", len(cols), want)
	}

	if cols[0].Key != "id" || cols[0].Header != "Código" {
		t.Errorf("first column = %q/%q, want id/Código", cols[0].Key, cols[0].Header)
	}
	if cols[1].Key != "title" {
		t.Errorf("second column = %q, want title", cols[1].Key)
	}

	seen := map[string]bool{}
	for _, c := range cols {
		if seen[c.Key] {
			t.Errorf("duplicate column key %q", c.Key)
		}
		seen[c.Key] = true
	}

	// Per-flag columns come last, in flag order
	flags := models.AllOptionalFlags()
	for i, flag := range flags {
		col := cols[21+i]
		if col.Key != "optional."+flag.Key {
			t.Errorf("flag column %d key = %q, want %q", i, col.Key, "optional."+flag.Key)
		}
	}
}

func TestColumnsPlaceholderOnEmptyItem(t *testing.T) {
	item := models.CatalogItem{}

	for _, col := range Columns() {
		got := col.Value(&item)
		if got == "" {
			t.Errorf("column %q rendered an empty cell", col.Key)
		}
	}
}

func TestSupplierColumnFallback(t *testing.T) {
	col, ok := ColumnByKey("supplier")
	if !ok {
		t.Fatal("supplier column missing")
	}

	withContact := models.CatalogItem{SupplierContactName: "Maria", SupplierCompanyName: "Empresa Y"}
	if got := col.Value(&withContact); got != "Maria" {
		t.Errorf("got %q, want contact name", got)
	}

	companyOnly := models.CatalogItem{SupplierCompanyName: "Empresa Y"}
	if got := col.Value(&companyOnly); got != "Empresa Y" {
		t.Errorf("got %q, want company name", got)
	}

	neither := models.CatalogItem{}
	if got := col.Value(&neither); got != Placeholder {
		t.Errorf("got %q, want placeholder", got)
	}
}

func TestOptionalsColumn(t *testing.T) {
	col, ok := ColumnByKey("optionals")
	if !ok {
		t.Fatal("optionals column missing")
	}

	item := models.CatalogItem{Optionals: models.Optionals{AirConditioning: true, Wifi: true}}
	got := col.Value(&item)
	if !strings.Contains(got, "Ar-condicionado") || !strings.Contains(got, "Wi-Fi") {
		t.Errorf("got %q, want both enabled labels", got)
	}

	empty := models.CatalogItem{}
	if got := col.Value(&empty); got != Placeholder {
		t.Errorf("got %q, want placeholder for no equipment", got)
	}
}

func TestColumnByKeyUnknown(t *testing.T) {
	if _, ok := ColumnByKey("nope"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{45000, "R$ 45.000,00"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{999, "R$ 999,00"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.value); got != tt.expected {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}

func TestFormatBool(t *testing.T) {
	if FormatBool(true) != "Sim" || FormatBool(false) != "Não" {
		t.Error("FormatBool localization wrong")
	}
}
