package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

const sheetName = "Sheet1"

// SpreadsheetExporter serializes an ordered working set into a single-sheet
// XLSX file following the shared column schema
type SpreadsheetExporter struct {
	logger *logging.Logger
}

// NewSpreadsheetExporter creates a spreadsheet exporter
func NewSpreadsheetExporter(logger *logging.Logger) *SpreadsheetExporter {
	return &SpreadsheetExporter{logger: logger}
}

// Export writes the header row plus one data row per item. An empty working
// set produces a well-formed header-only sheet.
func (e *SpreadsheetExporter) Export(items []models.CatalogItem, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	cols := Columns()

	for c, col := range cols {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			return fmt.Errorf("write header %q: %w", col.Header, err)
		}

		// Width at least the header label length so headers stay readable
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, float64(len([]rune(col.Header)))+2); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	for r := range items {
		item := &items[r]
		for c, col := range cols {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, col.Value(item)); err != nil {
				return fmt.Errorf("write row %d: %w", r+2, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}

	e.logger.Info("Spreadsheet export complete", logging.WithField("rows", len(items)))
	return nil
}
