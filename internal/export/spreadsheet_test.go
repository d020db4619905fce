package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/testutil"
)

func TestSpreadsheetExport(t *testing.T) {
	year := 2019
	items := []models.CatalogItem{
		{
			ID:                  "VH-001",
			Title:               "Marcopolo Paradiso 1200",
			Status:              "available",
			Price:               150000,
			City:                "Curitiba",
			State:               "PR",
			AvailableQuantity:   2,
			SupplierCompanyName: "Empresa X",
			ModelYear:           &year,
			DriveSystem:         "6x2",
			Optionals:           models.Optionals{Bathroom: true},
		},
		{ID: "VH-002"},
	}

	var buf bytes.Buffer
	exporter := NewSpreadsheetExporter(testutil.NullLogger())
	if err := exporter.Export(items, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	readCell := func(axis string) string {
		v, err := f.GetCellValue("Sheet1", axis)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", axis, err)
		}
		return v
	}

	if got := readCell("A1"); got != "Código" {
		t.Errorf("A1 = %q, want header Código", got)
	}
	if got := readCell("A2"); got != "VH-001" {
		t.Errorf("A2 = %q, want VH-001", got)
	}
	if got := readCell("D2"); got != "R$ 150.000,00" {
		t.Errorf("D2 = %q, want formatted price", got)
	}
	if got := readCell("H2"); got != "Empresa X" {
		t.Errorf("H2 = %q, want company fallback", got)
	}
	if got := readCell("A3"); got != "VH-002" {
		t.Errorf("A3 = %q, want VH-002", got)
	}

	// Every cell of the sparse second row is filled, never blank
	cols := Columns()
	for c := range cols {
		axis, err := excelize.CoordinatesToCellName(c+1, 3)
		if err != nil {
			t.Fatal(err)
		}
		if readCell(axis) == "" {
			t.Errorf("cell %s is blank for sparse item", axis)
		}
	}

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("got %d rows, want header plus 2 data rows", len(rows))
	}
}

func TestSpreadsheetExportEmptySet(t *testing.T) {
	var buf bytes.Buffer
	exporter := NewSpreadsheetExporter(testutil.NullLogger())
	if err := exporter.Export(nil, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
	if len(rows[0]) != len(Columns()) {
		t.Errorf("header has %d cells, want %d", len(rows[0]), len(Columns()))
	}
}
