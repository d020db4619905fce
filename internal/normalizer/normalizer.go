// Package normalizer is the single narrowing boundary between the untrusted
// RawRecord shape and the canonical CatalogItem. Normalize is total: any
// input, including the zero record, yields a fully-populated item with
// conservative defaults and never an error.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

var (
	driveSystemRegex = regexp.MustCompile(`(?i)\b(2x2|2x4|4x2|4x4|6x2|6x4)\b`)
	adPageURLRegex   = regexp.MustCompile(`(?i)link\s+do\s+an[uú]ncio\s*:?\s*(https?://\S+)`)
)

// designToolExtensions are file extensions that cannot be rasterized for
// embedding and are dropped from the image gallery
var designToolExtensions = map[string]bool{
	".psd": true,
	".ai":  true,
	".cdr": true,
	".eps": true,
}

// reclinableSeatsPhrase is matched case-insensitively (and diacritic-folded)
// against the description; there is no structured field for this flag
const reclinableSeatsPhrase = "reclinave"

// Normalize maps one raw record into a canonical CatalogItem
func Normalize(raw models.RawRecord) models.CatalogItem {
	item := models.CatalogItem{
		DriveSystem: models.DriveSystemUnknown,
		AllImages:   []string{},
		Description: strings.TrimSpace(raw.Description),
	}

	if pid := raw.ProductIdentification; pid != nil {
		item.ID = strings.TrimSpace(pid.ID)
		item.Title = strings.TrimSpace(pid.Title)
		item.Status = strings.TrimSpace(pid.Status)
		item.Price = parsePrice(pid.Price)
		item.UpdatedAt = strings.TrimSpace(pid.UpdatedAt)
		if pid.AvailableQuantity != nil && *pid.AvailableQuantity > 0 {
			item.AvailableQuantity = *pid.AvailableQuantity
		}
	}

	if loc := raw.Location; loc != nil {
		item.City = strings.TrimSpace(loc.City)
		item.State = strings.TrimSpace(loc.State)
	}

	if media := raw.Media; media != nil {
		item.AllImages = filterImages(media.TreatedImages, media.OriginalImages)
		if len(item.AllImages) > 0 {
			item.ImageURL = item.AllImages[0]
		}
	}

	if ch := raw.Chassis; ch != nil {
		item.FabricationYear = ch.FabricationYear
		item.ModelYear = ch.ModelYear
		item.ChassisManufacturer = strings.TrimSpace(ch.ChassisManufacturer)
		item.ChassisModel = strings.TrimSpace(ch.ChassisModel)
		item.BodyManufacturer = strings.TrimSpace(ch.BodyManufacturer)
		item.BodyModel = strings.TrimSpace(ch.BodyModel)
		item.DriveSystem = ExtractDriveSystem(item.ChassisModel)
	}

	if cat := raw.Category; cat != nil {
		item.Category = strings.TrimSpace(cat.Name)
		item.Subcategory = strings.TrimSpace(cat.Subcategory)
	}

	if sup := raw.Supplier; sup != nil {
		item.SupplierCompanyName = strings.TrimSpace(sup.CompanyName)
		item.SupplierContactName = strings.TrimSpace(sup.ContactName)
		item.SupplierPhone = strings.TrimSpace(sup.Phone)
	}

	item.AdPageURL = ExtractAdPageURL(item.Description)
	item.Optionals = normalizeOptionals(raw.Optionals, item.Description)

	return item
}

// NormalizeAll normalizes a batch of raw records, preserving input order
func NormalizeAll(raws []models.RawRecord) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, Normalize(raw))
	}
	return items
}

// ExtractDriveSystem scans a chassis model string for a traction token
// (2x2, 2x4, 4x2, 4x4, 6x2, 6x4). First match wins; absence yields the
// unknown sentinel.
func ExtractDriveSystem(chassisModel string) models.DriveSystem {
	if m := driveSystemRegex.FindString(chassisModel); m != "" {
		return models.DriveSystem(strings.ToLower(m))
	}
	return models.DriveSystemUnknown
}

// ExtractAdPageURL scans a description for the fixed "Link do anúncio" label
// followed by a URL. First match wins; absence yields the empty string.
func ExtractAdPageURL(description string) string {
	m := adPageURLRegex.FindStringSubmatch(description)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimRight(m[1], ".,;)")
}

func parsePrice(d *models.RawDecimal) float64 {
	if d == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(d.NumberDecimal), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// filterImages concatenates treated then original URLs, dropping anything
// whose extension denotes a non-rasterizable design-tool format
func filterImages(treated, original []string) []string {
	out := []string{}
	for _, url := range append(append([]string{}, treated...), original...) {
		url = strings.TrimSpace(url)
		if url == "" || isDesignToolFormat(url) {
			continue
		}
		out = append(out, url)
	}
	return out
}

func isDesignToolFormat(url string) bool {
	path := url
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if i := strings.LastIndex(path, "."); i >= 0 {
		return designToolExtensions[strings.ToLower(path[i:])]
	}
	return false
}

func normalizeOptionals(raw *models.RawOptionals, description string) models.Optionals {
	var opts models.Optionals
	if raw != nil {
		opts.AirConditioning = boolValue(raw.AirConditioning)
		opts.Bathroom = boolValue(raw.Bathroom)
		opts.Fridge = boolValue(raw.Fridge)
		opts.TV = boolValue(raw.TV)
		opts.SoundSystem = boolValue(raw.SoundSystem)
		opts.Wifi = boolValue(raw.Wifi)
		opts.Curtains = boolValue(raw.Curtains)
		opts.LegSupport = boolValue(raw.LegSupport)
		opts.Retarder = boolValue(raw.Retarder)
	}

	folded := strings.ToLower(models.RemoveDiacritics(description))
	opts.ReclinableSeats = strings.Contains(folded, reclinableSeatsPhrase)

	return opts
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
