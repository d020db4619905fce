// Package artifacts persists generated export files so reports remain
// retrievable after download. Local directory storage is the default; an
// S3-compatible bucket can be configured instead.
package artifacts

import "context"

// Store saves a finished export artifact under its filename
type Store interface {
	Save(ctx context.Context, filename string, data []byte, contentType string) error
}

// NopStore discards artifacts; used when persistence is not configured
type NopStore struct{}

func (NopStore) Save(ctx context.Context, filename string, data []byte, contentType string) error {
	return nil
}
