// Package source loads raw vehicle records from the configured data source.
// The records are untrusted and loosely shaped; normalization happens
// downstream in the catalog service.
package source

import (
	"context"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// Loader fetches the full raw record set from a data source
type Loader interface {
	Name() string
	Load(ctx context.Context) ([]models.RawRecord, error)
}
