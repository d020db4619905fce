package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/images"
)

// Page geometry in millimeters: fixed A4 portrait with a uniform margin.
const (
	pageMargin  = 15.0
	lineHeight  = 6.0
	titleHeight = 10.0
	blockGap    = 4.0
	labelWidth  = 60.0
)

// cursor is the explicit vertical position threaded through every block
// placement. Placement functions take a cursor and return the next one; the
// page-advance rule lives in ensure and applies uniformly to images, table
// rows, and wrapped text lines.
type cursor struct {
	y float64
}

// layout wraps a pdf document with its geometry and text translator
type layout struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	pageH    float64
	contentW float64
	imageSeq int
}

func newLayout() *layout {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)

	pageW, pageH := pdf.GetPageSize()
	return &layout{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		pageH:    pageH,
		contentW: pageW - 2*pageMargin,
	}
}

// newPage starts a fresh page and returns a cursor at its top
func (l *layout) newPage() cursor {
	l.pdf.AddPage()
	return cursor{y: pageMargin}
}

// ensure starts a new page when the remaining vertical space is smaller than
// the block about to be placed
func (l *layout) ensure(cur cursor, need float64) cursor {
	if cur.y+need > l.pageH-pageMargin {
		return l.newPage()
	}
	return cur
}

// title places a bold heading block
func (l *layout) title(cur cursor, text string) cursor {
	cur = l.ensure(cur, titleHeight)
	l.pdf.SetFont("Helvetica", "B", 16)
	l.pdf.SetXY(pageMargin, cur.y)
	l.pdf.CellFormat(l.contentW, titleHeight, l.tr(text), "", 0, "L", false, 0, "")
	return cursor{y: cur.y + titleHeight + blockGap/2}
}

// sectionHeader places a smaller bold heading
func (l *layout) sectionHeader(cur cursor, text string) cursor {
	cur = l.ensure(cur, lineHeight + blockGap)
	l.pdf.SetFont("Helvetica", "B", 12)
	l.pdf.SetXY(pageMargin, cur.y+blockGap/2)
	l.pdf.CellFormat(l.contentW, lineHeight, l.tr(text), "", 0, "L", false, 0, "")
	return cursor{y: cur.y + lineHeight + blockGap}
}

// textLine places a single line of regular text
func (l *layout) textLine(cur cursor, text string) cursor {
	cur = l.ensure(cur, lineHeight)
	l.pdf.SetFont("Helvetica", "", 10)
	l.pdf.SetXY(pageMargin, cur.y)
	l.pdf.CellFormat(l.contentW, lineHeight, l.tr(text), "", 0, "L", false, 0, "")
	return cursor{y: cur.y + lineHeight}
}

// keyValueRow places one bordered table row; the page-advance check runs per
// row so tables split cleanly across pages
func (l *layout) keyValueRow(cur cursor, key, value string) cursor {
	cur = l.ensure(cur, lineHeight)
	l.pdf.SetXY(pageMargin, cur.y)
	l.pdf.SetFont("Helvetica", "B", 9)
	l.pdf.CellFormat(labelWidth, lineHeight, l.tr(key), "1", 0, "L", false, 0, "")
	l.pdf.SetFont("Helvetica", "", 9)
	l.pdf.CellFormat(l.contentW-labelWidth, lineHeight, l.tr(value), "1", 0, "L", false, 0, "")
	return cursor{y: cur.y + lineHeight}
}

// paragraph word-wraps text to the content width, advancing pages per line
func (l *layout) paragraph(cur cursor, text string) cursor {
	l.pdf.SetFont("Helvetica", "", 10)
	lines := l.pdf.SplitLines([]byte(l.tr(text)), l.contentW)
	for _, line := range lines {
		cur = l.ensure(cur, lineHeight)
		l.pdf.SetXY(pageMargin, cur.y)
		l.pdf.CellFormat(l.contentW, lineHeight, string(line), "", 0, "L", false, 0, "")
		cur = cursor{y: cur.y + lineHeight}
	}
	return cur
}

// image places an encoded raster constrained to the content width and the
// given maximum block height, preserving the post-resize aspect ratio
func (l *layout) image(cur cursor, enc *images.Encoded, maxBlockH float64) cursor {
	if enc == nil || enc.Width <= 0 || enc.Height <= 0 {
		return cur
	}

	displayW := l.contentW
	displayH := displayW * float64(enc.Height) / float64(enc.Width)
	if displayH > maxBlockH {
		displayH = maxBlockH
		displayW = displayH * float64(enc.Width) / float64(enc.Height)
	}

	cur = l.ensure(cur, displayH)

	l.imageSeq++
	name := fmt.Sprintf("img-%d", l.imageSeq)
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	l.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(enc.Data))
	l.pdf.ImageOptions(name, pageMargin, cur.y, displayW, displayH, false, opts, 0, "")

	return cursor{y: cur.y + displayH + blockGap}
}

// gap inserts vertical spacing without forcing a page advance
func (l *layout) gap(cur cursor) cursor {
	return cursor{y: cur.y + blockGap}
}
