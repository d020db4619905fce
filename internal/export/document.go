package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/images"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// Pixel bounds requested from the resolver. Generous relative to the mm
// placement sizes so embedded photos stay sharp.
const (
	imageMaxPxW = 1000
	imageMaxPxH = 700
	batchPxH    = 420
)

// Block height caps in millimeters
const (
	singleImageMaxH = 110.0
	batchImageMaxH  = 60.0
)

// technicalRows lists the shared-schema columns shown in the single-item
// technical data table, in order
var technicalRows = []string{
	"fabricationYear",
	"modelYear",
	"chassisManufacturer",
	"chassisModel",
	"bodyManufacturer",
	"bodyModel",
	"category",
	"subcategory",
	"driveSystem",
}

// DocumentExporter renders catalog items into paginated PDF documents with
// embedded, resized images. Image resolution is sequential: one raster in
// flight at a time, within a gallery and across a batch.
type DocumentExporter struct {
	resolver *images.Resolver
	logger   *logging.Logger
}

// NewDocumentExporter creates a document exporter
func NewDocumentExporter(resolver *images.Resolver, logger *logging.Logger) *DocumentExporter {
	return &DocumentExporter{resolver: resolver, logger: logger}
}

// ExportSingle renders one item as a full report: title, identification
// summary, primary image, technical and equipment tables, description, and a
// gallery of the remaining images (the primary is not repeated there).
func (e *DocumentExporter) ExportSingle(ctx context.Context, item models.CatalogItem, w io.Writer) error {
	l := newLayout()
	cur := l.newPage()

	cur = l.title(cur, displayTitle(&item))
	cur = e.renderIdentification(l, cur, &item)

	if item.ImageURL != "" {
		cur = e.renderImage(ctx, l, cur, item.ImageURL, imageMaxPxH, singleImageMaxH)
	}

	cur = l.sectionHeader(cur, "Dados Técnicos")
	for _, key := range technicalRows {
		col, ok := ColumnByKey(key)
		if !ok {
			continue
		}
		cur = l.keyValueRow(cur, col.Header, col.Value(&item))
	}

	cur = l.sectionHeader(cur, "Opcionais")
	for _, flag := range models.AllOptionalFlags() {
		cur = l.keyValueRow(cur, flag.Label, FormatBool(flag.Get(item.Optionals)))
	}

	if strings.TrimSpace(item.Description) != "" {
		cur = l.sectionHeader(cur, "Descrição")
		cur = l.paragraph(cur, item.Description)
	}

	if len(item.AllImages) > 1 {
		cur = l.sectionHeader(cur, "Galeria")
		for _, url := range item.AllImages[1:] {
			cur = e.renderImage(ctx, l, cur, url, imageMaxPxH, singleImageMaxH)
		}
	}

	if err := l.pdf.Output(w); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	e.logger.Info("Document export complete", logging.WithField("id", item.ID))
	return nil
}

// ExportBatch renders one section per item: title, identification line,
// primary image at a smaller cap, and a one-line equipment list. Every item
// after the first starts on a new page.
func (e *DocumentExporter) ExportBatch(ctx context.Context, items []models.CatalogItem, w io.Writer) error {
	l := newLayout()
	cur := l.newPage()

	for i := range items {
		item := &items[i]
		if i > 0 {
			cur = l.newPage()
		}

		cur = l.title(cur, displayTitle(item))
		cur = l.textLine(cur, fmt.Sprintf("Código %s  |  %s  |  %s",
			orPlaceholder(item.ID), FormatPrice(item.Price), orPlaceholder(item.Location())))
		cur = l.gap(cur)

		if item.ImageURL != "" {
			cur = e.renderImage(ctx, l, cur, item.ImageURL, batchPxH, batchImageMaxH)
		}

		labels := item.Optionals.EnabledLabels()
		cur = l.textLine(cur, "Opcionais: "+orPlaceholder(strings.Join(labels, ", ")))
	}

	if err := l.pdf.Output(w); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	e.logger.Info("Batch document export complete", logging.WithField("items", len(items)))
	return nil
}

// renderImage resolves and places one image. Unresolvable images are skipped
// without inserting a placeholder or advancing the cursor.
func (e *DocumentExporter) renderImage(ctx context.Context, l *layout, cur cursor, url string, maxPxH int, maxBlockH float64) cursor {
	enc, err := e.resolver.ResolveEncoded(ctx, url, imageMaxPxW, maxPxH)
	if err != nil {
		e.logger.Warn("Skipping unresolvable image", logging.WithField("url", url))
		return cur
	}
	return l.image(cur, enc, maxBlockH)
}

func displayTitle(item *models.CatalogItem) string {
	if strings.TrimSpace(item.Title) != "" {
		return item.Title
	}
	return orPlaceholder(item.ID)
}

// renderIdentification places the id/status/price/location/supplier/quantity
// summary block
func (e *DocumentExporter) renderIdentification(l *layout, cur cursor, item *models.CatalogItem) cursor {
	supplier := item.SupplierDisplayName()
	if supplier != "" && item.SupplierPhone != "" {
		supplier = supplier + " (" + item.SupplierPhone + ")"
	}

	lines := []string{
		"Código: " + orPlaceholder(item.ID),
		"Status: " + orPlaceholder(item.Status),
		"Preço: " + FormatPrice(item.Price),
		"Localização: " + orPlaceholder(item.Location()),
		"Fornecedor: " + orPlaceholder(supplier),
		fmt.Sprintf("Quantidade disponível: %d", item.AvailableQuantity),
	}
	for _, line := range lines {
		cur = l.textLine(cur, line)
	}
	return l.gap(cur)
}
