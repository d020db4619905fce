package export

import (
	"fmt"
	"time"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// timestampLayout is the 15-character compact timestamp embedded in filenames
const timestampLayout = "20060102T150405"

// slugMaxLen caps the slugified title segment of single-document filenames
const slugMaxLen = 30

// SpreadsheetFilename builds the search export filename
func SpreadsheetFilename(brand string, now time.Time) string {
	return fmt.Sprintf("%s-PESQUISA-%s.xlsx", brand, now.Format(timestampLayout))
}

// SingleDocumentFilename builds the per-item report filename
func SingleDocumentFilename(brand string, item *models.CatalogItem, now time.Time) string {
	return fmt.Sprintf("%s-RELATORIO-%s-%s-%s.pdf",
		brand, item.ID, models.Slugify(item.Title, slugMaxLen), now.Format(timestampLayout))
}

// BatchDocumentFilename builds the multi-item report filename
func BatchDocumentFilename(brand string, now time.Time) string {
	return fmt.Sprintf("%s-RELATORIOS-%s.pdf", brand, now.Format(timestampLayout))
}
